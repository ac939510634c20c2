package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/service"
)

// ServeCommand represents the serve command
type ServeCommand struct {
	addr        string
	proxyPrefix string
	data        dataFlags
}

// NewServeCommand creates a new serve command
func NewServeCommand() *ServeCommand {
	return &ServeCommand{
		addr: config.DefaultAddr,
	}
}

// CreateCobraCommand creates the cobra command for the dashboard server
func (s *ServeCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard",
		Long: `Serve the dashboard over HTTP.

Routes:
  /                 employee 1 report
  /employee/{id}    employee report
  /team/{id}        team report
  /update_dropdown  selector options for the chosen profile type
  /update_data      form submission, redirects to the chosen report
  /healthz          build information

Examples:
  # Serve the bundled fixtures on :5001
  empdash serve

  # Serve a PostgreSQL database behind a reverse proxy
  empdash serve --source postgres --dsn postgres://localhost/events --proxy-prefix /dash`,
		Args: cobra.NoArgs,
		RunE: s.runServe,
	}

	cmd.Flags().StringVar(&s.addr, config.FlagAddr, config.DefaultAddr, "Listen address")
	cmd.Flags().StringVar(&s.proxyPrefix, config.FlagProxyPrefix, "", "Path prefix the dashboard is mounted under")
	s.data.register(cmd.Flags())

	return cmd
}

// runServe executes the serve command
func (s *ServeCommand) runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	o := config.Overrides{Addr: s.addr, ProxyPrefix: s.proxyPrefix}
	s.data.apply(&o)

	rt, err := openRuntime(ctx, cmd, o)
	if err != nil {
		return reportError(cmd, err)
	}
	defer rt.Close()

	server := service.NewServer(rt.Config.Server.Addr, rt.Handler(), rt.Logger)
	return reportError(cmd, server.Run(ctx))
}

// NewServeCmd creates and returns the serve cobra command
func NewServeCmd() *cobra.Command {
	return NewServeCommand().CreateCobraCommand()
}
