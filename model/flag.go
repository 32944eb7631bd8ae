package model

import "time"

const (
	StageAll   = "all"
	StageUsage = "usage"
	StageCost  = "cost"
)

type Flags struct {
	// AWS flags
	Region  string
	Profile string

	// Collection window
	Days   int
	Period time.Duration

	// Output
	UsageFile string
	CostFile  string
	Top       int

	// Pipeline
	Stage    string
	Delay    time.Duration
	LogLevel string
}
