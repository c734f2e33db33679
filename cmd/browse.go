package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/internal/tui"
	"github.com/benedict-erwin/agency-console/pkg/backoffice"
	"github.com/benedict-erwin/agency-console/pkg/logger"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

var browsePerPage int

var browseCmd = &cobra.Command{
	Use:   "browse [screen]",
	Short: "Open an interactive list screen",
	Long: `Open a full-screen list with editable filters, status cycling and paging.

Screens: bus, attractions, hotels, flights, tickets`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		screen, err := lookupScreen(args[0])
		if err != nil {
			return err
		}

		cfg := config.Get()
		client, err := backoffice.NewFromConfig(cfg)
		if err != nil {
			return err
		}

		perPage := browsePerPage
		if perPage <= 0 {
			perPage = cfg.Screens.PerPage
		}
		return screen.browse(cmd.Context(), client, perPage)
	},
}

func init() {
	browseCmd.Flags().IntVar(&browsePerPage, "per-page", 0, "rows per page (default screens.per_page)")
}

// runBrowser owns the terminal until the user quits. Log output would corrupt the
// screen, so it goes to app.log_file or nowhere.
func runBrowser[T screens.Filterable](ctx context.Context, c *backoffice.Client, cfg screens.Config[T], perPage int) error {
	logOut, closeLog, err := browserLog(config.Get().App.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.SetOutput(logOut)

	observe, updates := tui.NewObserver[T]()
	ctrl := pager.New(
		backoffice.ListFetcher[T](c, cfg.ListPath),
		pager.WithStatuses[T](backoffice.StatusProvider(c, cfg.StatusPath)),
		pager.WithObserver(observe),
		pager.WithName[T](cfg.Name),
	)

	model := tui.NewModel[T](ctx, ctrl, cfg, cfg.DefaultFilters(perPage), updates)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("browse %s: %w", cfg.Name, err)
	}
	return nil
}

func browserLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
