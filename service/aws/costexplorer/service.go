package awscostexplorer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-logclass-doctor/model"
)

const (
	// CloudWatchService is the Cost Explorer SERVICE dimension value for CloudWatch and CloudWatch Logs
	CloudWatchService = "AmazonCloudWatch"

	costsAggregation = "UnblendedCost"
	dateLayout       = "2006-01-02"
)

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetServiceCost returns the unblended cost of serviceName over the days
// covered by window. Cost Explorer end dates are exclusive, so the day of
// window.End is included by moving the end one day forward.
func (s *service) GetServiceCost(ctx context.Context, serviceName string, window model.TimeWindow) (*model.ServiceCost, error) {
	start := window.Start.Format(dateLayout)
	end := s.truncateToDay(window.End).AddDate(0, 0, 1).Format(dateLayout)

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start),
			End:   aws.String(end),
		},
		Metrics: []string{costsAggregation},
		Filter: &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    types.DimensionService,
				Values: []string{serviceName},
			},
		},
	}

	cost := &model.ServiceCost{
		Name: serviceName,
		Unit: "USD",
		DateInterval: model.DateInterval{
			Start: aws.String(start),
			End:   aws.String(end),
		},
	}

	for {
		output, err := s.client.GetCostAndUsage(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("getting %s cost: %w", serviceName, err)
		}

		for _, result := range output.ResultsByTime {
			metric, ok := result.Total[costsAggregation]
			if !ok || metric.Amount == nil {
				continue
			}

			amount, err := strconv.ParseFloat(*metric.Amount, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %s amount %q: %w", serviceName, *metric.Amount, err)
			}

			cost.Amount += amount
			if metric.Unit != nil {
				cost.Unit = *metric.Unit
			}
		}

		if output.NextPageToken == nil {
			break
		}
		input.NextPageToken = output.NextPageToken
	}

	return cost, nil
}

func (s *service) truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
