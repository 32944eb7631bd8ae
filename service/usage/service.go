package usage

import (
	"context"

	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/elC0mpa/aws-logclass-doctor/service"
	"github.com/rs/zerolog"
)

func NewService(events service.EventCounter, filters service.FilterService, metrics service.IngestionService, logger zerolog.Logger) *usageService {
	return &usageService{
		events:  events,
		filters: filters,
		metrics: metrics,
		logger:  logger.With().Str("service", "usage").Logger(),
	}
}

// Collect runs every collector one after the other. None of them fail: each
// one falls back to zero values for whatever it could not read.
func (s *usageService) Collect(ctx context.Context, logGroups []string, window model.TimeWindow) model.UsageMaps {
	s.logger.Info().
		Int("log_groups", len(logGroups)).
		Time("start", window.Start).
		Time("end", window.End).
		Msg("collecting usage")

	var maps model.UsageMaps

	s.logger.Info().Msg("checking subscription filters")
	maps.SubscriptionFilters = s.filters.CheckSubscriptionFilters(ctx, logGroups)

	s.logger.Info().Str("event", model.EventGetLogEvents).Msg("counting events")
	maps.GetEventsCounts = s.events.CountEvents(ctx, model.EventGetLogEvents, logGroups, window)

	s.logger.Info().Str("event", model.EventFilterLogEvents).Msg("counting events")
	maps.FilterEventsCounts = s.events.CountEvents(ctx, model.EventFilterLogEvents, logGroups, window)

	s.logger.Info().Msg("checking metric filters")
	maps.MetricFilters = s.filters.CheckMetricFilters(ctx, logGroups)

	s.logger.Info().Msg("reading ingested bytes")
	maps.IncomingBytes = s.metrics.CollectIncomingBytes(ctx, logGroups, window)

	return maps
}
