package awscostexplorer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCostExplorerAPI is a mock for CostExplorerAPI
type MockCostExplorerAPI struct {
	mock.Mock
}

func (m *MockCostExplorerAPI) GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error) {
	args := m.Called(ctx, aws.ToString(params.NextPageToken))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*costexplorer.GetCostAndUsageOutput), args.Error(1)
}

func total(amount string) types.ResultByTime {
	return types.ResultByTime{
		Total: map[string]types.MetricValue{
			"UnblendedCost": {Amount: aws.String(amount), Unit: aws.String("USD")},
		},
	}
}

func TestService_GetServiceCost(t *testing.T) {
	client := new(MockCostExplorerAPI)
	client.On("GetCostAndUsage", mock.Anything, "").Return(&costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []types.ResultByTime{total("12.5"), {}},
		NextPageToken: aws.String("next"),
	}, nil).Once()
	client.On("GetCostAndUsage", mock.Anything, "next").Return(&costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []types.ResultByTime{total("7.25")},
	}, nil).Once()

	svc := &service{client: client}
	window := model.NewTimeWindow(time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC), 30, 0)

	cost, err := svc.GetServiceCost(context.Background(), CloudWatchService, window)

	require.NoError(t, err)
	assert.Equal(t, CloudWatchService, cost.Name)
	assert.InDelta(t, 19.75, cost.Amount, 1e-9)
	assert.Equal(t, "USD", cost.Unit)
	assert.Equal(t, "2026-09-19", aws.ToString(cost.Start))
	assert.Equal(t, "2026-10-20", aws.ToString(cost.End))
	client.AssertExpectations(t)
}

func TestService_GetServiceCost_Errors(t *testing.T) {
	window := model.NewTimeWindow(time.Now(), 30, 0)

	t.Run("api error", func(t *testing.T) {
		client := new(MockCostExplorerAPI)
		client.On("GetCostAndUsage", mock.Anything, "").Return(nil, errors.New("AccessDeniedException"))

		_, err := (&service{client: client}).GetServiceCost(context.Background(), CloudWatchService, window)
		assert.ErrorContains(t, err, "AccessDeniedException")
	})

	t.Run("unparseable amount", func(t *testing.T) {
		client := new(MockCostExplorerAPI)
		client.On("GetCostAndUsage", mock.Anything, "").Return(&costexplorer.GetCostAndUsageOutput{
			ResultsByTime: []types.ResultByTime{total("n/a")},
		}, nil)

		_, err := (&service{client: client}).GetServiceCost(context.Background(), CloudWatchService, window)
		assert.Error(t, err)
	})
}
