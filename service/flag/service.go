package flag

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/elC0mpa/aws-logclass-doctor/service/report"
)

func NewService() *service {
	return &service{}
}

type service struct{}

func (s *service) GetParsedFlags() (model.Flags, error) {
	return s.parse(os.Args[1:])
}

func (s *service) parse(args []string) (model.Flags, error) {
	var flags model.Flags

	fs := flag.NewFlagSet("aws-logclass-doctor", flag.ContinueOnError)
	fs.StringVar(&flags.Region, "region", "us-east-1", "AWS region")
	fs.StringVar(&flags.Profile, "profile", "", "AWS profile configuration")
	fs.IntVar(&flags.Days, "days", 30, "Number of days of usage to analyse")
	fs.DurationVar(&flags.Period, "period", 24*time.Hour, "Granularity of the IncomingBytes datapoints")
	fs.StringVar(&flags.UsageFile, "usage-file", report.DefaultUsageFile, "Usage report written by the usage stage and read by the cost stage")
	fs.StringVar(&flags.CostFile, "cost-file", report.DefaultCostFile, "Cost analysis written by the cost stage")
	fs.IntVar(&flags.Top, "top", 10, "Number of log groups shown in the summary, 0 shows all")
	fs.StringVar(&flags.Stage, "stage", model.StageAll, "Stage to run: all, usage or cost")
	fs.DurationVar(&flags.Delay, "delay", report.DefaultDelay, "Pause before the usage report is read back, 0 disables it")
	fs.StringVar(&flags.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}

	switch flags.Stage {
	case model.StageAll, model.StageUsage, model.StageCost:
	default:
		return model.Flags{}, fmt.Errorf("invalid -stage %q: want all, usage or cost", flags.Stage)
	}

	if err := model.ValidateWindow(flags.Days, flags.Period); err != nil {
		return model.Flags{}, fmt.Errorf("invalid -days/-period: %w", err)
	}

	if flags.Top < 0 {
		return model.Flags{}, fmt.Errorf("invalid -top %d: must not be negative", flags.Top)
	}

	if flags.Delay < 0 {
		return model.Flags{}, fmt.Errorf("invalid -delay %s: must not be negative", flags.Delay)
	}

	return flags, nil
}
