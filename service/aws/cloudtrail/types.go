package awscloudtrail

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail/types"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/rs/zerolog"
)

type service struct {
	client cloudtrail.LookupEventsAPIClient
	logger zerolog.Logger
}

type TrailService interface {
	LookupEvents(ctx context.Context, eventName string, window model.TimeWindow) ([]types.Event, error)
	CountEvents(ctx context.Context, eventName string, logGroups []string, window model.TimeWindow) map[string]int
}

// trailEvent is the part of a CloudTrail record payload the counters read
type trailEvent struct {
	RequestParameters *struct {
		LogGroupName *string `json:"logGroupName"`
	} `json:"requestParameters"`
}
