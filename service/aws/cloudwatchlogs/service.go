package awscloudwatchlogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/elC0mpa/aws-logclass-doctor/utils"
	"github.com/rs/zerolog"
)

func NewService(awsconfig aws.Config, logger zerolog.Logger) *service {
	client := cloudwatchlogs.NewFromConfig(awsconfig)
	return newService(client, logger)
}

func newService(client LogsAPI, logger zerolog.Logger) *service {
	return &service{
		client: client,
		logger: logger.With().Str("service", "logs").Logger(),
	}
}

// ListLogGroupNames returns every log group name in listing order. Any API
// error aborts the listing, there is nothing to report without an inventory.
func (s *service) ListLogGroupNames(ctx context.Context) ([]string, error) {
	paginator := cloudwatchlogs.NewDescribeLogGroupsPaginator(s.client, &cloudwatchlogs.DescribeLogGroupsInput{})

	var names []string
	seen := make(map[string]struct{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describing log groups: %w", err)
		}

		for _, group := range page.LogGroups {
			name := aws.ToString(group.LogGroupName)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	s.logger.Info().Int("count", len(names)).Msg("found log groups")

	return names, nil
}

func (s *service) HasSubscriptionFilters(ctx context.Context, logGroup string) (bool, error) {
	output, err := s.client.DescribeSubscriptionFilters(ctx, &cloudwatchlogs.DescribeSubscriptionFiltersInput{
		LogGroupName: aws.String(logGroup),
	})
	if err != nil {
		return false, err
	}

	return len(output.SubscriptionFilters) > 0, nil
}

func (s *service) HasMetricFilters(ctx context.Context, logGroup string) (bool, error) {
	output, err := s.client.DescribeMetricFilters(ctx, &cloudwatchlogs.DescribeMetricFiltersInput{
		LogGroupName: aws.String(logGroup),
	})
	if err != nil {
		return false, err
	}

	return len(output.MetricFilters) > 0, nil
}

func (s *service) CheckSubscriptionFilters(ctx context.Context, logGroups []string) map[string]bool {
	return s.checkFilters(ctx, logGroups, "subscription", s.HasSubscriptionFilters)
}

func (s *service) CheckMetricFilters(ctx context.Context, logGroups []string) map[string]bool {
	return s.checkFilters(ctx, logGroups, "metric", s.HasMetricFilters)
}

// checkFilters never fails as a whole: a group whose lookup errors is
// reported as having no filters and the loop moves on.
func (s *service) checkFilters(ctx context.Context, logGroups []string, kind string, check func(context.Context, string) (bool, error)) map[string]bool {
	result := make(map[string]bool, len(logGroups))
	for _, logGroup := range logGroups {
		result[logGroup] = false
	}

	for _, logGroup := range logGroups {
		found, err := check(ctx, logGroup)
		if err != nil {
			var notFound *types.ResourceNotFoundException
			if !errors.As(err, &notFound) {
				s.logger.Warn().
					Err(err).
					Str("log_group", logGroup).
					Str("filter", kind).
					Str("code", utils.APIErrorCode(err)).
					Msg("could not describe filters, assuming none")
			}
			continue
		}

		if found {
			result[logGroup] = true
			s.logger.Debug().Str("log_group", logGroup).Str("filter", kind).Msg("filters found")
		}
	}

	return result
}
