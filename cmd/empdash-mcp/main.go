package main

import (
	"context"
	"fmt"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"

	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/internal/logging"
	"github.com/ludo-technologies/empdash/internal/version"
	"github.com/ludo-technologies/empdash/mcp"
	"github.com/ludo-technologies/empdash/service"
)

const serverName = "empdash"

func main() {
	fs := pflag.NewFlagSet(serverName+"-mcp", pflag.ExitOnError)
	configPath := fs.StringP("config", "c", "", "Configuration file path")
	_ = fs.Parse(os.Args[1:])

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// MCP uses stdout for JSON-RPC
	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return err
	}

	rt, err := service.NewRuntime(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	server := mcpserver.NewMCPServer(
		serverName,
		version.Short(),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)
	mcp.RegisterTools(server, mcp.NewHandlerSet(mcp.NewDependencies(rt)))

	logger.Info().
		Str("version", version.Short()).
		Strs("tools", []string{"list_options", "predict_risk", "render_report"}).
		Msg("MCP server ready, waiting for client connection")

	// Blocks until the client disconnects
	return mcpserver.ServeStdio(server)
}
