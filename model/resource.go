package model

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// LogClassReport represents everything the summary needs for a single account
type LogClassReport struct {
	AccountID   string
	Window      TimeWindow
	Cost        *CostReport
	ActualSpend *ServiceCost
	Usage       map[string]UsageRecord
}
