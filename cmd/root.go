package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/pkg/auth"
	"github.com/benedict-erwin/agency-console/pkg/logger"
	"github.com/benedict-erwin/agency-console/pkg/utils"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "agency-console",
	Short: "Travel agency back-office console",
	Long: `Browse and filter bus, attraction, hotel and flight bookings and the
support ticket queue of the agency back office.`,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initialize loads config and wires the logger, timezone and auth registry
func initialize(cmd *cobra.Command, args []string) error {
	if err := config.Init(cfgFile); err != nil {
		return err
	}
	cfg := config.Get()

	logger.Init(logger.Options{
		Level:       cfg.App.LogLevel,
		Environment: cfg.App.Env,
		Timezone:    cfg.App.Timezone,
	})

	if err := utils.InitTimezone(cfg.App.Timezone); err != nil {
		logger.Warn().Err(err).Msg("Timezone initialization failed, continuing with UTC")
	}

	if err := auth.InitAuth(cfg.Auth); err != nil {
		return fmt.Errorf("failed to initialize auth: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.config.json or $XDG_CONFIG_HOME/agency-console/.config.json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusesCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(devCmd)
}
