package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elC0mpa/aws-logclass-doctor/cmd/mcp/response"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	awscloudtrail "github.com/elC0mpa/aws-logclass-doctor/service/aws/cloudtrail"
	awscloudwatch "github.com/elC0mpa/aws-logclass-doctor/service/aws/cloudwatch"
	awscloudwatchlogs "github.com/elC0mpa/aws-logclass-doctor/service/aws/cloudwatchlogs"
	awsconfig "github.com/elC0mpa/aws-logclass-doctor/service/aws/config"
	awssts "github.com/elC0mpa/aws-logclass-doctor/service/aws/sts"
	"github.com/elC0mpa/aws-logclass-doctor/service/report"
	"github.com/elC0mpa/aws-logclass-doctor/service/usage"
	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// Options configures every AWS tool
type Options struct {
	Region  string
	Profile string
	Days    int
	Period  time.Duration
	WorkDir string
}

// RegisterAWSTools registers all AWS tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, opts Options, logger zerolog.Logger) {
	// Account info
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAWSAccountInfoHandler(opts),
	)

	// Inventory
	s.AddTool(
		mcp.NewTool("aws_list_log_groups",
			mcp.WithDescription("List the names of every CloudWatch Logs log group in the region"),
		),
		makeAWSListLogGroupsHandler(opts, logger),
	)

	// Usage
	s.AddTool(
		mcp.NewTool("aws_get_log_group_usage",
			mcp.WithDescription("Get GetLogEvents/FilterLogEvents call counts, subscription and metric filter presence and ingested bytes per log group"),
			mcp.WithString("log_groups",
				mcp.Description("Comma separated log group names to report on. Defaults to every log group"),
			),
			mcp.WithNumber("days",
				mcp.Description("Number of days to look back. Defaults to the server configuration"),
			),
		),
		makeAWSLogGroupUsageHandler(opts, logger),
	)

	// Cost projection
	s.AddTool(
		mcp.NewTool("aws_get_log_class_cost_analysis",
			mcp.WithDescription("Compare the ingestion cost of every log group under the Standard and Infrequent Access log classes"),
			mcp.WithNumber("days",
				mcp.Description("Number of days to look back. Defaults to the server configuration"),
			),
		),
		makeAWSLogClassCostHandler(opts, logger),
	)
}

func makeAWSAccountInfoHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, opts.Region, opts.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		stsSvc := awssts.NewService(awsCfg)
		info, err := stsSvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		return jsonResult(response.ConvertAccountInfo(info))
	}
}

func makeAWSListLogGroupsHandler(opts Options, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, opts.Region, opts.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		logsSvc := awscloudwatchlogs.NewService(awsCfg, logger)
		names, err := logsSvc.ListLogGroupNames(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list log groups: %v", err)), nil
		}

		return jsonResult(response.ConvertLogGroups(names))
	}
}

func makeAWSLogGroupUsageHandler(opts Options, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window, err := requestWindow(request, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid lookback window: %v", err)), nil
		}

		records, err := collectUsage(ctx, opts, logger, window, request.GetString("log_groups", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to collect usage: %v", err)), nil
		}

		return jsonResult(response.ConvertUsageRecords(window, records))
	}
}

func makeAWSLogClassCostHandler(opts Options, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window, err := requestWindow(request, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid lookback window: %v", err)), nil
		}

		records, err := collectUsage(ctx, opts, logger, window, "")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to collect usage: %v", err)), nil
		}

		dir, err := os.MkdirTemp(opts.WorkDir, "logclass-")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create work directory: %v", err)), nil
		}
		defer os.RemoveAll(dir)

		usagePath := filepath.Join(dir, report.DefaultUsageFile)
		if err := report.WriteUsageCSV(usagePath, records); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to write usage report: %v", err)), nil
		}

		projector := report.NewProjector(0, report.DefaultPricing, logger)
		costReport, err := projector.Project(ctx, model.UsageReport{Path: usagePath, Records: records}, filepath.Join(dir, report.DefaultCostFile))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to project costs: %v", err)), nil
		}

		return jsonResult(response.ConvertCostReport(window, costReport))
	}
}

// requestWindow builds the lookback for a tool call. The days argument
// overrides the configured default and must describe a usable window.
func requestWindow(request mcp.CallToolRequest, opts Options) (model.TimeWindow, error) {
	days := request.GetInt("days", opts.Days)
	if err := model.ValidateWindow(days, opts.Period); err != nil {
		return model.TimeWindow{}, err
	}
	return model.NewTimeWindow(time.Now(), days, opts.Period), nil
}

// collectUsage runs the usage stage for the log groups named in filter, or
// for the whole inventory when filter is empty.
func collectUsage(ctx context.Context, opts Options, logger zerolog.Logger, window model.TimeWindow, filter string) ([]model.UsageRecord, error) {
	configSvc := awsconfig.NewService()
	awsCfg, err := configSvc.GetAWSCfg(ctx, opts.Region, opts.Profile)
	if err != nil {
		return nil, fmt.Errorf("configuring AWS: %w", err)
	}

	logsSvc := awscloudwatchlogs.NewService(awsCfg, logger)
	inventory, err := logsSvc.ListLogGroupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing log groups: %w", err)
	}
	inventory = selectLogGroups(inventory, filter)

	usageSvc := usage.NewService(
		awscloudtrail.NewService(awsCfg, logger),
		logsSvc,
		awscloudwatch.NewService(awsCfg, logger),
		logger,
	)

	return report.Aggregate(inventory, usageSvc.Collect(ctx, inventory, window)), nil
}

// selectLogGroups keeps the inventory entries named in the comma separated
// filter, in inventory order. Unknown names are dropped.
func selectLogGroups(inventory []string, filter string) []string {
	if strings.TrimSpace(filter) == "" {
		return inventory
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Split(filter, ",") {
		if name = strings.TrimSpace(name); name != "" {
			wanted[name] = true
		}
	}

	selected := make([]string, 0, len(wanted))
	for _, name := range inventory {
		if wanted[name] {
			selected = append(selected, name)
		}
	}

	return selected
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
