package response

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/elC0mpa/aws-logclass-doctor/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertLogGroups wraps an inventory listing
func ConvertLogGroups(names []string) *LogGroupList {
	if names == nil {
		names = []string{}
	}
	return &LogGroupList{
		Count:     len(names),
		LogGroups: names,
	}
}

// ConvertUsageRecords converts usage records to response format
func ConvertUsageRecords(window model.TimeWindow, records []model.UsageRecord) *UsageReport {
	groups := make([]LogGroupUsage, 0, len(records))
	for _, r := range records {
		groups = append(groups, LogGroupUsage{
			Name:                   r.LogGroupName,
			GetLogEventsCount:      r.GetEventsCount,
			FilterLogEventsCount:   r.FilterEventsCount,
			HasSubscriptionFilters: r.HasSubscriptionFilter,
			HasMetricFilters:       r.HasMetricFilter,
			IncomingBytes:          r.TotalIncomingBytes,
			Incoming:               humanBytes(r.TotalIncomingBytes),
			IAEligible:             r.IAEligible(),
		})
	}

	return &UsageReport{
		WindowStart: window.Start.Format(time.RFC3339),
		WindowEnd:   window.End.Format(time.RFC3339),
		LogGroups:   groups,
	}
}

// ConvertCostReport converts a cost report to response format
func ConvertCostReport(window model.TimeWindow, report *model.CostReport) *CostAnalysis {
	if report == nil {
		return nil
	}

	groups := make([]LogGroupCost, 0, len(report.Records))
	for _, r := range report.Records {
		groups = append(groups, LogGroupCost{
			Name:             r.LogGroupName,
			IncomingBytes:    r.TotalIncomingBytes,
			StandardCost:     r.StandardCost,
			IACost:           r.ReducedCost,
			ReductionPercent: r.ReductionPercent,
		})
	}

	standard := report.TotalStandardCost()
	reduced := report.TotalReducedCost()

	return &CostAnalysis{
		WindowStart: window.Start.Format(time.RFC3339),
		WindowEnd:   window.End.Format(time.RFC3339),
		LogGroups:   groups,
		Totals: CostTotals{
			IncomingBytes: report.TotalIncomingBytes(),
			Incoming:      humanBytes(report.TotalIncomingBytes()),
			StandardCost:  standard,
			IACost:        reduced,
			Savings:       standard - reduced,
			Currency:      "USD",
		},
	}
}

func humanBytes(v float64) string {
	if v <= 0 {
		return humanize.IBytes(0)
	}
	return humanize.IBytes(uint64(v))
}
