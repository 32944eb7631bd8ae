package awscloudtrail

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail/types"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/elC0mpa/aws-logclass-doctor/utils"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// lookupPageSize is the largest page LookupEvents accepts
const lookupPageSize int32 = 50

var errNoLogGroup = errors.New("requestParameters.logGroupName missing")

func NewService(awsconfig aws.Config, logger zerolog.Logger) *service {
	client := cloudtrail.NewFromConfig(awsconfig)
	return newService(client, logger)
}

func newService(client cloudtrail.LookupEventsAPIClient, logger zerolog.Logger) *service {
	return &service{
		client: client,
		logger: logger.With().Str("service", "cloudtrail").Logger(),
	}
}

// LookupEvents returns every management event named eventName inside window,
// following NextToken until the last page.
func (s *service) LookupEvents(ctx context.Context, eventName string, window model.TimeWindow) ([]types.Event, error) {
	input := &cloudtrail.LookupEventsInput{
		LookupAttributes: []types.LookupAttribute{
			{
				AttributeKey:   types.LookupAttributeKeyEventName,
				AttributeValue: aws.String(eventName),
			},
		},
		StartTime:  aws.Time(window.Start),
		EndTime:    aws.Time(window.End),
		MaxResults: aws.Int32(lookupPageSize),
	}

	paginator := cloudtrail.NewLookupEventsPaginator(s.client, input)

	var events []types.Event
	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("looking up %s events (page %d): %w", eventName, pages+1, err)
		}
		pages++
		events = append(events, page.Events...)
	}

	s.logger.Debug().Str("event", eventName).Int("pages", pages).Int("events", len(events)).Msg("lookup finished")

	return events, nil
}

// CountEvents counts eventName occurrences per log group. It is best-effort:
// when the lookup fails the zeroed map is returned and a warning is logged.
func (s *service) CountEvents(ctx context.Context, eventName string, logGroups []string, window model.TimeWindow) map[string]int {
	counts := make(map[string]int, len(logGroups))
	for _, logGroup := range logGroups {
		counts[logGroup] = 0
	}

	events, err := s.LookupEvents(ctx, eventName, window)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("event", eventName).
			Str("code", utils.APIErrorCode(err)).
			Msg("event lookup failed, reporting zero counts")
		return counts
	}

	s.tally(eventName, events, counts)

	return counts
}

// tally increments counts for every event that references a known log group.
// Groups missing from counts are ignored.
func (s *service) tally(eventName string, events []types.Event, counts map[string]int) {
	skipped := 0
	for _, event := range events {
		logGroup, err := logGroupOf(event)
		if err != nil {
			skipped++
			s.logger.Warn().
				Err(err).
				Str("event", eventName).
				Str("event_id", aws.ToString(event.EventId)).
				Msg("skipping event")
			continue
		}

		if _, ok := counts[logGroup]; ok {
			counts[logGroup]++
		}
	}

	if skipped > 0 {
		s.logger.Info().Str("event", eventName).Int("skipped", skipped).Msg("some events could not be attributed")
	}
}

func logGroupOf(event types.Event) (string, error) {
	payload := aws.ToString(event.CloudTrailEvent)

	var parsed trailEvent
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return "", fmt.Errorf("decoding CloudTrailEvent: %w", err)
	}

	if parsed.RequestParameters == nil || parsed.RequestParameters.LogGroupName == nil {
		return "", errNoLogGroup
	}

	return *parsed.RequestParameters.LogGroupName, nil
}
