package model

import (
	"fmt"
	"time"
)

// AWS-specific models

const (
	// EventGetLogEvents is the CloudTrail event name recorded for log reads
	EventGetLogEvents = "GetLogEvents"
	// EventFilterLogEvents is the CloudTrail event name recorded for log searches
	EventFilterLogEvents = "FilterLogEvents"
)

// TimeWindow is the lookback period used by every usage collector
type TimeWindow struct {
	Start  time.Time
	End    time.Time
	Period time.Duration
}

// NewTimeWindow returns a window of the given number of days ending at end.
// A non-positive period falls back to one day.
func NewTimeWindow(end time.Time, days int, period time.Duration) TimeWindow {
	if period <= 0 {
		period = 24 * time.Hour
	}

	end = end.UTC()

	return TimeWindow{
		Start:  end.AddDate(0, 0, -days),
		End:    end,
		Period: period,
	}
}

const (
	// MinPeriod is the smallest IncomingBytes granularity CloudWatch accepts
	MinPeriod = time.Minute
	// MaxDatapoints is the most datapoints a single metric statistics call returns
	MaxDatapoints = 1440
)

// ValidateWindow rejects lookbacks that every collector would fail on:
// non-positive days, and periods CloudWatch refuses for the window.
func ValidateWindow(days int, period time.Duration) error {
	if days <= 0 {
		return fmt.Errorf("days must be positive, got %d", days)
	}
	if period < MinPeriod {
		return fmt.Errorf("period must be at least %s, got %s", MinPeriod, period)
	}
	if period%MinPeriod != 0 {
		return fmt.Errorf("period must be a multiple of %s, got %s", MinPeriod, period)
	}
	if points := int64(time.Duration(days) * 24 * time.Hour / period); points > MaxDatapoints {
		return fmt.Errorf("period %s over %d days needs %d datapoints, at most %d are allowed", period, days, points, MaxDatapoints)
	}
	return nil
}

// UsageMaps holds the per log group results of every collector, keyed by log group name
type UsageMaps struct {
	GetEventsCounts     map[string]int
	FilterEventsCounts  map[string]int
	SubscriptionFilters map[string]bool
	MetricFilters       map[string]bool
	IncomingBytes       map[string]float64
}

// UsageRecord is one row of the usage report
type UsageRecord struct {
	LogGroupName          string
	GetEventsCount        int
	FilterEventsCount     int
	HasSubscriptionFilter bool
	HasMetricFilter       bool
	TotalIncomingBytes    float64
}

// IAEligible reports whether a log group uses none of the features the
// Infrequent Access log class lacks.
func (u UsageRecord) IAEligible() bool {
	return !u.HasSubscriptionFilter && !u.HasMetricFilter
}

// UsageReport is the hand-off between the usage stage and the cost stage.
// Path is authoritative; Records is only informational.
type UsageReport struct {
	Path    string
	Records []UsageRecord
}
