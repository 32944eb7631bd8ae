package awscloudwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/elC0mpa/aws-logclass-doctor/utils"
	"github.com/rs/zerolog"
)

const (
	logsNamespace       = "AWS/Logs"
	incomingBytesMetric = "IncomingBytes"
	logGroupDimension   = "LogGroupName"

	// DefaultPeriod is the datapoint granularity used when none is given
	DefaultPeriod = 24 * time.Hour
)

func NewService(awsconfig aws.Config, logger zerolog.Logger) *service {
	client := cloudwatch.NewFromConfig(awsconfig)
	return newService(client, logger)
}

func newService(client MetricsAPI, logger zerolog.Logger) *service {
	return &service{
		client: client,
		logger: logger.With().Str("service", "cloudwatch").Logger(),
	}
}

// GetIncomingBytes sums the daily (or period sized) IncomingBytes sums of a
// log group between start and end.
func (s *service) GetIncomingBytes(ctx context.Context, logGroup string, start, end time.Time, period time.Duration) (float64, error) {
	if period <= 0 {
		period = DefaultPeriod
	}

	output, err := s.client.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(logsNamespace),
		MetricName: aws.String(incomingBytesMetric),
		Dimensions: []types.Dimension{
			{
				Name:  aws.String(logGroupDimension),
				Value: aws.String(logGroup),
			},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(int32(period / time.Second)),
		Statistics: []types.Statistic{types.StatisticSum},
	})
	if err != nil {
		return 0, fmt.Errorf("getting %s for %s: %w", incomingBytesMetric, logGroup, err)
	}

	var total float64
	for _, point := range output.Datapoints {
		if point.Sum != nil {
			total += *point.Sum
		}
	}

	return total, nil
}

// CollectIncomingBytes queries every log group in turn. A group whose query
// fails is recorded as 0 bytes.
func (s *service) CollectIncomingBytes(ctx context.Context, logGroups []string, window model.TimeWindow) map[string]float64 {
	result := make(map[string]float64, len(logGroups))

	for _, logGroup := range logGroups {
		total, err := s.GetIncomingBytes(ctx, logGroup, window.Start, window.End, window.Period)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("log_group", logGroup).
				Str("code", utils.APIErrorCode(err)).
				Msg("could not read ingested bytes, assuming 0")
			result[logGroup] = 0
			continue
		}

		result[logGroup] = total
	}

	return result
}
