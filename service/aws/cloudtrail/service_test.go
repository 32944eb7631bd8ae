package awscloudtrail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail/types"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLookupEventsAPI is a mock for cloudtrail.LookupEventsAPIClient
type MockLookupEventsAPI struct {
	mock.Mock
}

func (m *MockLookupEventsAPI) LookupEvents(ctx context.Context, params *cloudtrail.LookupEventsInput, optFns ...func(*cloudtrail.Options)) (*cloudtrail.LookupEventsOutput, error) {
	args := m.Called(ctx, aws.ToString(params.NextToken))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudtrail.LookupEventsOutput), args.Error(1)
}

func testWindow() model.TimeWindow {
	return model.NewTimeWindow(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), 30, 24*time.Hour)
}

func event(id, payload string) types.Event {
	return types.Event{EventId: aws.String(id), CloudTrailEvent: aws.String(payload)}
}

func TestService_CountEvents(t *testing.T) {
	client := new(MockLookupEventsAPI)
	client.On("LookupEvents", mock.Anything, "").Return(&cloudtrail.LookupEventsOutput{
		Events: []types.Event{
			event("1", `{"requestParameters":{"logGroupName":"g1"}}`),
			event("2", `not json`),
			event("3", `{"requestParameters":{"logGroupName":"g1"}}`),
		},
		NextToken: aws.String("page-2"),
	}, nil).Once()
	client.On("LookupEvents", mock.Anything, "page-2").Return(&cloudtrail.LookupEventsOutput{
		Events: []types.Event{
			event("4", `{"requestParameters":{"logGroupName":"g2"}}`),
			event("5", `{"requestParameters":{"logGroupName":"not-in-inventory"}}`),
			event("6", `{"requestParameters":null}`),
			event("7", `{"eventName":"GetLogEvents"}`),
			event("8", `{"requestParameters":{"logGroupName":"g1"}}`),
		},
	}, nil).Once()

	svc := newService(client, zerolog.Nop())

	counts := svc.CountEvents(context.Background(), model.EventGetLogEvents, []string{"g1", "g2", "g3"}, testWindow())

	assert.Equal(t, map[string]int{"g1": 3, "g2": 1, "g3": 0}, counts)
	client.AssertExpectations(t)
}

func TestService_CountEvents_LookupFailureReturnsZeros(t *testing.T) {
	client := new(MockLookupEventsAPI)
	client.On("LookupEvents", mock.Anything, "").Return(&cloudtrail.LookupEventsOutput{
		Events:    []types.Event{event("1", `{"requestParameters":{"logGroupName":"g1"}}`)},
		NextToken: aws.String("page-2"),
	}, nil).Once()
	client.On("LookupEvents", mock.Anything, "page-2").Return(nil, errors.New("ThrottlingException")).Once()

	svc := newService(client, zerolog.Nop())

	counts := svc.CountEvents(context.Background(), model.EventFilterLogEvents, []string{"g1", "g2"}, testWindow())

	assert.Equal(t, map[string]int{"g1": 0, "g2": 0}, counts)
}

func TestService_LookupEvents_SendsEventNameAndWindow(t *testing.T) {
	window := testWindow()
	capture := &capturingClient{}

	events, err := newService(capture, zerolog.Nop()).LookupEvents(context.Background(), model.EventFilterLogEvents, window)

	require.NoError(t, err)
	assert.Empty(t, events)
	require.NotNil(t, capture.input)
	require.Len(t, capture.input.LookupAttributes, 1)
	assert.Equal(t, types.LookupAttributeKeyEventName, capture.input.LookupAttributes[0].AttributeKey)
	assert.Equal(t, model.EventFilterLogEvents, aws.ToString(capture.input.LookupAttributes[0].AttributeValue))
	assert.Equal(t, window.Start, aws.ToTime(capture.input.StartTime))
	assert.Equal(t, window.End, aws.ToTime(capture.input.EndTime))
	assert.Equal(t, lookupPageSize, aws.ToInt32(capture.input.MaxResults))
}

type capturingClient struct {
	input *cloudtrail.LookupEventsInput
}

func (c *capturingClient) LookupEvents(ctx context.Context, params *cloudtrail.LookupEventsInput, optFns ...func(*cloudtrail.Options)) (*cloudtrail.LookupEventsOutput, error) {
	c.input = params
	return &cloudtrail.LookupEventsOutput{}, nil
}

func TestLogGroupOf(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "log group present", payload: `{"requestParameters":{"logGroupName":"/aws/lambda/fn","startFromHead":true}}`, want: "/aws/lambda/fn"},
		{name: "invalid json", payload: `{"requestParameters":`, wantErr: true},
		{name: "empty payload", payload: ``, wantErr: true},
		{name: "no request parameters", payload: `{"eventName":"GetLogEvents"}`, wantErr: true},
		{name: "no log group name", payload: `{"requestParameters":{"logStreamName":"s"}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logGroupOf(event("id", tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
