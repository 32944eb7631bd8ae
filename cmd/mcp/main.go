package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-logclass-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/aws-logclass-doctor/utils"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, logs go to stderr
	logger := utils.NewLogger(os.Stderr, cfg.LogLevel)

	s := server.NewMCPServer(
		"logclass-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAWSTools(s, cfg.ToolOptions(), logger)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
