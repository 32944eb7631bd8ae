package awscloudwatchlogs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/rs/zerolog"
)

// LogsAPI is the subset of the CloudWatch Logs client used by the service
type LogsAPI interface {
	cloudwatchlogs.DescribeLogGroupsAPIClient
	DescribeSubscriptionFilters(ctx context.Context, params *cloudwatchlogs.DescribeSubscriptionFiltersInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeSubscriptionFiltersOutput, error)
	DescribeMetricFilters(ctx context.Context, params *cloudwatchlogs.DescribeMetricFiltersInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeMetricFiltersOutput, error)
}

type service struct {
	client LogsAPI
	logger zerolog.Logger
}

type LogsService interface {
	ListLogGroupNames(ctx context.Context) ([]string, error)
	HasSubscriptionFilters(ctx context.Context, logGroup string) (bool, error)
	HasMetricFilters(ctx context.Context, logGroup string) (bool, error)
	CheckSubscriptionFilters(ctx context.Context, logGroups []string) map[string]bool
	CheckMetricFilters(ctx context.Context, logGroups []string) map[string]bool
}
