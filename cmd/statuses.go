package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/pkg/backoffice"
)

var statusesCmd = &cobra.Command{
	Use:           "statuses [screen]",
	Short:         "Show the status codes a screen can filter on",
	Args:          cobra.ExactArgs(1),
	RunE:          runStatuses,
	SilenceErrors: true,
}

func runStatuses(cmd *cobra.Command, args []string) error {
	screen, err := lookupScreen(args[0])
	if err != nil {
		return fail(cmd, err)
	}

	client, err := backoffice.NewFromConfig(config.Get())
	if err != nil {
		return fail(cmd, err)
	}

	options, err := backoffice.StatusProvider(client, screen.statusPath)(cmd.Context())
	if err != nil {
		return fail(cmd, err)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header([]string{"Code", "Label"})
	for _, opt := range options {
		table.Append([]string{colorStatus(opt.Value, opt.Value), opt.Label})
	}
	table.Render()
	return nil
}
