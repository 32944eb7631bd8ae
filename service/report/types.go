package report

import (
	"time"

	"github.com/rs/zerolog"
)

// Usage report columns, in file order
const (
	ColumnLogGroupName        = "Log Group Name"
	ColumnGetLogEventsCount   = "GetLogEvents Count"
	ColumnFilterLogEventsCnt  = "FilterLogEvents Count"
	ColumnSubscriptionFilters = "Has Subscription Filters"
	ColumnMetricFilters       = "Has Metric Filters"
	ColumnIncomingBytes       = "Total IncomingBytes"
)

// Columns appended by the cost projection
const (
	ColumnStandardPricing = "StandardLogClassPricing"
	ColumnIAPricing       = "IALogClassPricing"
	ColumnReduction       = "Reduction%"
)

const (
	DefaultUsageFile = "log_group_metrics.csv"
	DefaultCostFile  = "cost_analysis.csv"

	// DefaultDelay is the pause taken before the usage report is read back
	DefaultDelay = 3 * time.Second
)

// UsageColumns is the header of the usage report
var UsageColumns = []string{
	ColumnLogGroupName,
	ColumnGetLogEventsCount,
	ColumnFilterLogEventsCnt,
	ColumnSubscriptionFilters,
	ColumnMetricFilters,
	ColumnIncomingBytes,
}

// CostColumns are appended to the usage header in the cost report
var CostColumns = []string{
	ColumnStandardPricing,
	ColumnIAPricing,
	ColumnReduction,
}

// Pricing is the per GiB ingestion price of both log classes
type Pricing struct {
	StandardPerGB float64
	ReducedPerGB  float64
}

// DefaultPricing is the us-east-1 ingestion price of the Standard and
// Infrequent Access log classes.
var DefaultPricing = Pricing{
	StandardPerGB: 0.50,
	ReducedPerGB:  0.25,
}

type projector struct {
	delay   time.Duration
	pricing Pricing
	logger  zerolog.Logger
}
