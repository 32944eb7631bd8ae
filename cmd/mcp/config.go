package main

import (
	"fmt"
	"time"

	"github.com/elC0mpa/aws-logclass-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	AWSRegion  string        `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSProfile string        `envconfig:"AWS_PROFILE"`
	Days       int           `envconfig:"LOGCLASS_DAYS" default:"30"`
	Period     time.Duration `envconfig:"LOGCLASS_PERIOD" default:"24h"`
	WorkDir    string        `envconfig:"LOGCLASS_WORK_DIR"`
	LogLevel   string        `envconfig:"LOGCLASS_LOG_LEVEL" default:"warn"`
}

// LoadConfig reads configuration from the environment, after loading an
// optional .env file from the working directory.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	if err := model.ValidateWindow(cfg.Days, cfg.Period); err != nil {
		return nil, fmt.Errorf("invalid LOGCLASS_DAYS/LOGCLASS_PERIOD: %w", err)
	}

	return &cfg, nil
}

// ToolOptions returns the options shared by every registered tool
func (c *Config) ToolOptions() tools.Options {
	return tools.Options{
		Region:  c.AWSRegion,
		Profile: c.AWSProfile,
		Days:    c.Days,
		Period:  c.Period,
		WorkDir: c.WorkDir,
	}
}
