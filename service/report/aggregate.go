package report

import (
	"github.com/elC0mpa/aws-logclass-doctor/model"
)

// Aggregate joins the collector results into one record per inventory entry,
// keeping inventory order. Missing entries take the zero value.
func Aggregate(inventory []string, usage model.UsageMaps) []model.UsageRecord {
	records := make([]model.UsageRecord, 0, len(inventory))

	for _, name := range inventory {
		records = append(records, model.UsageRecord{
			LogGroupName:          name,
			GetEventsCount:        usage.GetEventsCounts[name],
			FilterEventsCount:     usage.FilterEventsCounts[name],
			HasSubscriptionFilter: usage.SubscriptionFilters[name],
			HasMetricFilter:       usage.MetricFilters[name],
			TotalIncomingBytes:    usage.IncomingBytes[name],
		})
	}

	return records
}
