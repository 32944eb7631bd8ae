package awscloudwatch

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/rs/zerolog"
)

// MetricsAPI is the subset of the CloudWatch client used by the service
type MetricsAPI interface {
	GetMetricStatistics(ctx context.Context, params *cloudwatch.GetMetricStatisticsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error)
}

type service struct {
	client MetricsAPI
	logger zerolog.Logger
}

type MetricsService interface {
	GetIncomingBytes(ctx context.Context, logGroup string, start, end time.Time, period time.Duration) (float64, error)
	CollectIncomingBytes(ctx context.Context, logGroups []string, window model.TimeWindow) map[string]float64
}
