package report

import (
	"testing"

	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioUsage() ([]string, model.UsageMaps) {
	inventory := []string{"g1", "g2"}
	usage := model.UsageMaps{
		GetEventsCounts:     map[string]int{"g1": 3, "g2": 0},
		FilterEventsCounts:  map[string]int{"g1": 1, "g2": 2},
		SubscriptionFilters: map[string]bool{"g1": true, "g2": false},
		MetricFilters:       map[string]bool{"g1": false, "g2": false},
		IncomingBytes:       map[string]float64{"g1": 1073741824, "g2": 0},
	}
	return inventory, usage
}

func TestAggregate(t *testing.T) {
	inventory, usage := scenarioUsage()

	records := Aggregate(inventory, usage)

	require.Len(t, records, 2)
	assert.Equal(t, model.UsageRecord{
		LogGroupName:          "g1",
		GetEventsCount:        3,
		FilterEventsCount:     1,
		HasSubscriptionFilter: true,
		HasMetricFilter:       false,
		TotalIncomingBytes:    1073741824,
	}, records[0])
	assert.Equal(t, "g2", records[1].LogGroupName)
	assert.Equal(t, 2, records[1].FilterEventsCount)
}

func TestAggregate_KeepsInventoryOrderAndDefaults(t *testing.T) {
	inventory := []string{"zeta", "alpha", "mid"}
	usage := model.UsageMaps{
		GetEventsCounts: map[string]int{"alpha": 5, "unknown": 9},
		MetricFilters:   map[string]bool{"mid": true},
	}

	records := Aggregate(inventory, usage)

	require.Len(t, records, len(inventory))
	for i, name := range inventory {
		assert.Equal(t, name, records[i].LogGroupName)
	}
	assert.Equal(t, model.UsageRecord{LogGroupName: "zeta"}, records[0])
	assert.Equal(t, 5, records[1].GetEventsCount)
	assert.True(t, records[2].HasMetricFilter)
	assert.Zero(t, records[2].TotalIncomingBytes)
}

func TestAggregate_EmptyInventory(t *testing.T) {
	assert.Empty(t, Aggregate(nil, model.UsageMaps{}))
}
