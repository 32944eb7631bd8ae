package usage

import (
	"context"
	"testing"
	"time"

	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventCounter is a mock for service.EventCounter
type MockEventCounter struct {
	mock.Mock
}

func (m *MockEventCounter) CountEvents(ctx context.Context, eventName string, logGroups []string, window model.TimeWindow) map[string]int {
	args := m.Called(ctx, eventName, logGroups, window)
	return args.Get(0).(map[string]int)
}

// MockFilterService is a mock for service.FilterService
type MockFilterService struct {
	mock.Mock
}

func (m *MockFilterService) CheckSubscriptionFilters(ctx context.Context, logGroups []string) map[string]bool {
	args := m.Called(ctx, logGroups)
	return args.Get(0).(map[string]bool)
}

func (m *MockFilterService) CheckMetricFilters(ctx context.Context, logGroups []string) map[string]bool {
	args := m.Called(ctx, logGroups)
	return args.Get(0).(map[string]bool)
}

// MockIngestionService is a mock for service.IngestionService
type MockIngestionService struct {
	mock.Mock
}

func (m *MockIngestionService) CollectIncomingBytes(ctx context.Context, logGroups []string, window model.TimeWindow) map[string]float64 {
	args := m.Called(ctx, logGroups, window)
	return args.Get(0).(map[string]float64)
}

func TestService_Collect(t *testing.T) {
	inventory := []string{"g1", "g2"}
	window := model.NewTimeWindow(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), 30, 24*time.Hour)

	var order []string
	track := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, name) }
	}

	events := new(MockEventCounter)
	events.On("CountEvents", mock.Anything, model.EventGetLogEvents, inventory, window).
		Return(map[string]int{"g1": 3, "g2": 0}).Run(track("get")).Once()
	events.On("CountEvents", mock.Anything, model.EventFilterLogEvents, inventory, window).
		Return(map[string]int{"g1": 1, "g2": 2}).Run(track("filter")).Once()

	filters := new(MockFilterService)
	filters.On("CheckSubscriptionFilters", mock.Anything, inventory).
		Return(map[string]bool{"g1": true, "g2": false}).Run(track("subscription")).Once()
	filters.On("CheckMetricFilters", mock.Anything, inventory).
		Return(map[string]bool{"g1": false, "g2": false}).Run(track("metric")).Once()

	metrics := new(MockIngestionService)
	metrics.On("CollectIncomingBytes", mock.Anything, inventory, window).
		Return(map[string]float64{"g1": 1 << 30, "g2": 0}).Run(track("bytes")).Once()

	svc := NewService(events, filters, metrics, zerolog.Nop())

	maps := svc.Collect(context.Background(), inventory, window)

	assert.Equal(t, map[string]int{"g1": 3, "g2": 0}, maps.GetEventsCounts)
	assert.Equal(t, map[string]int{"g1": 1, "g2": 2}, maps.FilterEventsCounts)
	assert.Equal(t, map[string]bool{"g1": true, "g2": false}, maps.SubscriptionFilters)
	assert.Equal(t, map[string]bool{"g1": false, "g2": false}, maps.MetricFilters)
	assert.Equal(t, map[string]float64{"g1": 1 << 30, "g2": 0}, maps.IncomingBytes)
	assert.Equal(t, []string{"subscription", "get", "filter", "metric", "bytes"}, order)

	events.AssertExpectations(t)
	filters.AssertExpectations(t)
	metrics.AssertExpectations(t)
}
