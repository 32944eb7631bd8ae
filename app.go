package main

import (
	"context"
	"errors"
	stdflag "flag"
	"fmt"
	"os"

	awscloudtrail "github.com/elC0mpa/aws-logclass-doctor/service/aws/cloudtrail"
	awscloudwatch "github.com/elC0mpa/aws-logclass-doctor/service/aws/cloudwatch"
	awscloudwatchlogs "github.com/elC0mpa/aws-logclass-doctor/service/aws/cloudwatchlogs"
	awsconfig "github.com/elC0mpa/aws-logclass-doctor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-logclass-doctor/service/aws/costexplorer"
	awssts "github.com/elC0mpa/aws-logclass-doctor/service/aws/sts"
	"github.com/elC0mpa/aws-logclass-doctor/service/flag"
	"github.com/elC0mpa/aws-logclass-doctor/service/orchestrator"
	"github.com/elC0mpa/aws-logclass-doctor/service/report"
	"github.com/elC0mpa/aws-logclass-doctor/service/usage"
	"github.com/elC0mpa/aws-logclass-doctor/utils"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, stdflag.ErrHelp) {
			return
		}
		utils.StopSpinner()
		fmt.Fprintf(os.Stdout, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return err
	}

	logger := utils.NewLogger(os.Stdout, flags.LogLevel)

	utils.DrawBanner()
	utils.StartSpinner()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(context.Background(), flags.Region, flags.Profile)
	if err != nil {
		return err
	}

	logsService := awscloudwatchlogs.NewService(awsCfg, logger)
	trailService := awscloudtrail.NewService(awsCfg, logger)
	metricsService := awscloudwatch.NewService(awsCfg, logger)
	stsService := awssts.NewService(awsCfg)
	costService := awscostexplorer.NewService(awsCfg)

	usageService := usage.NewService(trailService, logsService, metricsService, logger)
	projector := report.NewProjector(flags.Delay, report.DefaultPricing, logger)

	orchestratorService := orchestrator.NewService(stsService, costService, logsService, usageService, projector, logger, os.Stdout)

	return orchestratorService.Orchestrate(flags)
}
