package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeWindow(t *testing.T) {
	end := time.Date(2026, 3, 31, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	window := NewTimeWindow(end, 30, time.Hour)

	assert.Equal(t, time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC), window.End)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Hour, window.Period)
	assert.Equal(t, time.UTC, window.End.Location())
}

func TestNewTimeWindow_DefaultPeriod(t *testing.T) {
	window := NewTimeWindow(time.Now(), 1, 0)

	assert.Equal(t, 24*time.Hour, window.Period)
}

func TestUsageRecord_IAEligible(t *testing.T) {
	tests := []struct {
		name     string
		record   UsageRecord
		expected bool
	}{
		{"no filters", UsageRecord{}, true},
		{"subscription filter", UsageRecord{HasSubscriptionFilter: true}, false},
		{"metric filter", UsageRecord{HasMetricFilter: true}, false},
		{"reads do not matter", UsageRecord{GetEventsCount: 10, FilterEventsCount: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.IAEligible())
		})
	}
}

func TestCostReport_Totals(t *testing.T) {
	report := &CostReport{
		Records: []CostRecord{
			{LogGroupName: "g1", TotalIncomingBytes: 1 << 30, StandardCost: 0.5, ReducedCost: 0.25},
			{LogGroupName: "g2", TotalIncomingBytes: 3 << 30, StandardCost: 1.5, ReducedCost: 0.75},
		},
	}

	assert.InDelta(t, 2.0, report.TotalStandardCost(), 1e-9)
	assert.InDelta(t, 1.0, report.TotalReducedCost(), 1e-9)
	assert.Equal(t, float64(4<<30), report.TotalIncomingBytes())
	assert.InDelta(t, 0.75, report.Records[1].Savings(), 1e-9)
}

func TestCostRecord_Value(t *testing.T) {
	record := CostRecord{Values: map[string]string{"Owner": "team-a"}}

	assert.Equal(t, "team-a", record.Value("Owner"))
	assert.Empty(t, record.Value("Missing"))
}

func TestValidateWindow(t *testing.T) {
	valid := []struct {
		days   int
		period time.Duration
	}{
		{30, 24 * time.Hour},
		{30, time.Hour},
		{1, time.Minute},
		{60, time.Hour},
	}
	for _, tt := range valid {
		assert.NoError(t, ValidateWindow(tt.days, tt.period), "%d days / %s", tt.days, tt.period)
	}

	tests := map[string]struct {
		days   int
		period time.Duration
	}{
		"zero days":           {0, 24 * time.Hour},
		"negative days":       {-5, 24 * time.Hour},
		"sub-second period":   {30, 500 * time.Millisecond},
		"negative period":     {30, -time.Hour},
		"not a minute":        {30, 90 * time.Second},
		"too many datapoints": {30, time.Minute},
		"61 days hourly":      {61, time.Hour},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidateWindow(tt.days, tt.period))
		})
	}
}
