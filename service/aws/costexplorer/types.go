package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-logclass-doctor/model"
)

// CostExplorerAPI is the subset of the Cost Explorer client used by the service
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

type service struct {
	client CostExplorerAPI
}

type CostService interface {
	GetServiceCost(ctx context.Context, serviceName string, window model.TimeWindow) (*model.ServiceCost, error)
}
