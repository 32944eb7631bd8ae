package service

import (
	"context"

	"github.com/elC0mpa/aws-logclass-doctor/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// CostService provides actual billed costs
type CostService interface {
	GetServiceCost(ctx context.Context, serviceName string, window model.TimeWindow) (*model.ServiceCost, error)
}

// InventoryService lists the log groups of the account
type InventoryService interface {
	ListLogGroupNames(ctx context.Context) ([]string, error)
}

// FilterService checks which log groups have subscription or metric filters
type FilterService interface {
	CheckSubscriptionFilters(ctx context.Context, logGroups []string) map[string]bool
	CheckMetricFilters(ctx context.Context, logGroups []string) map[string]bool
}

// EventCounter counts audit events per log group
type EventCounter interface {
	CountEvents(ctx context.Context, eventName string, logGroups []string, window model.TimeWindow) map[string]int
}

// IngestionService reports ingested bytes per log group
type IngestionService interface {
	CollectIncomingBytes(ctx context.Context, logGroups []string, window model.TimeWindow) map[string]float64
}

// UsageCollector gathers every usage signal for an inventory
type UsageCollector interface {
	Collect(ctx context.Context, logGroups []string, window model.TimeWindow) model.UsageMaps
}

// CostProjector turns a usage report on disk into a cost report on disk
type CostProjector interface {
	Project(ctx context.Context, usage model.UsageReport, outputPath string) (*model.CostReport, error)
}
