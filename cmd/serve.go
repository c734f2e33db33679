package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jpillora/overseer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/internal/services/sandbox"
	"github.com/benedict-erwin/agency-console/pkg/logger"
	"github.com/benedict-erwin/agency-console/pkg/utils"
	"github.com/benedict-erwin/agency-console/server"
)

// overseerState is set when the process runs as an overseer child
var overseerState *overseer.State

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sandbox back-office API",
	Long:  `Starts the sandbox back-office API under overseer for zero-downtime restarts`,
	RunE:  runServe,
}

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Start the sandbox API without overseer",
	Long:  `Starts the sandbox back-office API in the foreground, for hot reload tools`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default sandbox.port)")
	devCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default sandbox.port)")
}

// ExecuteWithState runs the CLI inside an overseer child, serving on its listener
func ExecuteWithState(state overseer.State) {
	overseerState = &state
	Execute()
}

// ServeAddress resolves the listen address before cobra runs, for overseer
func ServeAddress(args []string) string {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	path := fs.String("config", "", "")
	port := fs.Int("port", 0, "")
	_ = fs.Parse(args)

	if *port > 0 {
		return fmt.Sprintf(":%d", *port)
	}
	if err := config.Init(*path); err != nil {
		return fmt.Sprintf(":%d", config.Default().Sandbox.Port)
	}
	return fmt.Sprintf(":%d", config.Get().Sandbox.Port)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	log := logger.WithScope("serveCmd")

	if err := sandbox.Init(cfg.Sandbox, utils.Now()); err != nil {
		log.Error().Err(err).Msg("Failed to load sandbox datasets")
		return err
	}

	if cmd.Name() == "serve" && overseerState != nil && overseerState.Listener != nil {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			select {
			case <-overseerState.GracefulShutdown:
				cancel()
			case <-ctx.Done():
			}
		}()
		return server.Serve(ctx, overseerState.Listener)
	}

	port := cfg.Sandbox.Port
	if servePort > 0 {
		port = servePort
	}
	if err := server.Start(port); err != nil {
		log.Error().Err(err).Msg("Failed to start server")
		return err
	}
	return nil
}
