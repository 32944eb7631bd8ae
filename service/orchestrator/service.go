package orchestrator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/elC0mpa/aws-logclass-doctor/service"
	awscostexplorer "github.com/elC0mpa/aws-logclass-doctor/service/aws/costexplorer"
	"github.com/elC0mpa/aws-logclass-doctor/service/report"
	"github.com/elC0mpa/aws-logclass-doctor/utils"
	"github.com/rs/zerolog"
)

func NewService(
	identityService service.IdentityService,
	costService service.CostService,
	inventoryService service.InventoryService,
	usageCollector service.UsageCollector,
	costProjector service.CostProjector,
	logger zerolog.Logger,
	out io.Writer,
) *orchestratorService {
	return &orchestratorService{
		identityService:  identityService,
		costService:      costService,
		inventoryService: inventoryService,
		usageCollector:   usageCollector,
		costProjector:    costProjector,
		logger:           logger,
		out:              out,
		now:              time.Now,
	}
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	ctx := context.Background()
	window := model.NewTimeWindow(s.now(), flags.Days, flags.Period)

	switch flags.Stage {
	case model.StageUsage:
		_, err := s.usageWorkflow(ctx, flags, window)
		utils.StopSpinner()
		return err
	case model.StageCost:
		return s.costWorkflow(ctx, flags, window, model.UsageReport{Path: flags.UsageFile})
	case model.StageAll, "":
		usage, err := s.usageWorkflow(ctx, flags, window)
		if err != nil {
			utils.StopSpinner()
			return err
		}
		return s.costWorkflow(ctx, flags, window, usage)
	default:
		utils.StopSpinner()
		return fmt.Errorf("unknown stage %q", flags.Stage)
	}
}

// usageWorkflow lists the inventory, collects usage and writes the usage
// report. Only a failed inventory or a failed write is fatal.
func (s *orchestratorService) usageWorkflow(ctx context.Context, flags model.Flags, window model.TimeWindow) (model.UsageReport, error) {
	inventory, err := s.inventoryService.ListLogGroupNames(ctx)
	if err != nil {
		return model.UsageReport{}, err
	}

	usage := s.usageCollector.Collect(ctx, inventory, window)
	records := report.Aggregate(inventory, usage)

	for _, r := range records {
		s.logger.Info().
			Str("log_group", r.LogGroupName).
			Int("get_log_events", r.GetEventsCount).
			Float64("incoming_bytes", r.TotalIncomingBytes).
			Msg("log group usage")
	}

	if err := report.WriteUsageCSV(flags.UsageFile, records); err != nil {
		return model.UsageReport{}, err
	}

	s.logger.Info().Str("file", flags.UsageFile).Int("rows", len(records)).Msg("wrote usage report")

	return model.UsageReport{Path: flags.UsageFile, Records: records}, nil
}

// costWorkflow projects the usage report on disk and prints the summary
func (s *orchestratorService) costWorkflow(ctx context.Context, flags model.Flags, window model.TimeWindow, usage model.UsageReport) error {
	costReport, err := s.costProjector.Project(ctx, usage, flags.CostFile)
	if err != nil {
		utils.StopSpinner()
		return err
	}

	summary := &model.LogClassReport{
		AccountID: "unknown",
		Window:    window,
		Cost:      costReport,
		Usage:     make(map[string]model.UsageRecord, len(usage.Records)),
	}
	for _, r := range usage.Records {
		summary.Usage[r.LogGroupName] = r
	}
	if len(summary.Usage) == 0 {
		s.loadUsage(summary, usage.Path)
	}

	account, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not resolve account")
	} else {
		summary.AccountID = account.AccountID
	}

	actual, err := s.costService.GetServiceCost(ctx, awscostexplorer.CloudWatchService, window)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not read actual CloudWatch spend")
	} else {
		summary.ActualSpend = actual
	}

	utils.StopSpinner()

	utils.DrawLogClassTable(s.out, summary, flags.Top)
	utils.DrawCostChart(s.out, costReport, flags.Top)

	return nil
}

// loadUsage fills the filter flags for a cost-only run. The usage report may
// have been edited by hand, so a file that no longer parses only loses the
// eligibility column.
func (s *orchestratorService) loadUsage(summary *model.LogClassReport, path string) {
	records, err := report.ReadUsageCSV(path)
	if err != nil {
		s.logger.Debug().Err(err).Msg("usage report not parseable, eligibility unknown")
		return
	}

	for _, r := range records {
		summary.Usage[r.LogGroupName] = r
	}
}
