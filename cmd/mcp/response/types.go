package response

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// LogGroupList is the inventory of log groups
type LogGroupList struct {
	Count     int      `json:"count"`
	LogGroups []string `json:"log_groups"`
}

// LogGroupUsage represents the usage of a single log group over the window
type LogGroupUsage struct {
	Name                   string  `json:"name"`
	GetLogEventsCount      int     `json:"get_log_events_count"`
	FilterLogEventsCount   int     `json:"filter_log_events_count"`
	HasSubscriptionFilters bool    `json:"has_subscription_filters"`
	HasMetricFilters       bool    `json:"has_metric_filters"`
	IncomingBytes          float64 `json:"incoming_bytes"`
	Incoming               string  `json:"incoming"`
	IAEligible             bool    `json:"ia_eligible"`
}

// UsageReport represents the usage of every requested log group
type UsageReport struct {
	WindowStart string          `json:"window_start"`
	WindowEnd   string          `json:"window_end"`
	LogGroups   []LogGroupUsage `json:"log_groups"`
}

// LogGroupCost represents both log class prices of a single log group
type LogGroupCost struct {
	Name             string  `json:"name"`
	IncomingBytes    float64 `json:"incoming_bytes"`
	StandardCost     float64 `json:"standard_cost"`
	IACost           float64 `json:"ia_cost"`
	ReductionPercent float64 `json:"reduction_percent"`
}

// CostTotals sums every log group of a cost analysis
type CostTotals struct {
	IncomingBytes float64 `json:"incoming_bytes"`
	Incoming      string  `json:"incoming"`
	StandardCost  float64 `json:"standard_cost"`
	IACost        float64 `json:"ia_cost"`
	Savings       float64 `json:"savings"`
	Currency      string  `json:"currency"`
}

// CostAnalysis represents the log class cost projection
type CostAnalysis struct {
	WindowStart string         `json:"window_start"`
	WindowEnd   string         `json:"window_end"`
	LogGroups   []LogGroupCost `json:"log_groups"`
	Totals      CostTotals     `json:"totals"`
}
