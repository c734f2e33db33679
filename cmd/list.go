package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/pkg/backoffice"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

var listCmd = &cobra.Command{
	Use:   "list [screen]",
	Short: "Fetch one page of a back-office list",
	Long: `Fetch one filtered page of bookings or tickets and print it.

Screens: bus, attractions, hotels, flights, tickets`,
	Example: `  agency-console list bus --status CONFIRMED --from-date 2024-05-01
  agency-console list tickets --agent "Sunrise" --page 2 --output json`,
	Args:          cobra.ExactArgs(1),
	RunE:          runList,
	SilenceErrors: true,
}

var (
	listFromDate string
	listToDate   string
	listRef      string
	listAgent    string
	listStatus   string
	listPage     int
	listPerPage  int
	listOutput   string
)

func init() {
	f := listCmd.Flags()
	f.StringVar(&listFromDate, "from-date", "", "earliest record date, YYYY-MM-DD")
	f.StringVar(&listToDate, "to-date", "", "latest record date, YYYY-MM-DD")
	f.StringVar(&listRef, "ref", "", "booking id, PNR or ticket number fragment")
	f.StringVar(&listAgent, "agent", "", "agent serial or name fragment")
	f.StringVar(&listStatus, "status", "", "exact status code")
	f.IntVar(&listPage, "page", 1, "page to show")
	f.IntVar(&listPerPage, "per-page", 0, "rows per page (default screens.per_page)")
	f.StringVarP(&listOutput, "output", "o", "table", "output format: table or json")
}

func runList(cmd *cobra.Command, args []string) error {
	if listOutput != "table" && listOutput != "json" {
		return fail(cmd, fmt.Errorf("unknown output format %q", listOutput))
	}

	screen, err := lookupScreen(args[0])
	if err != nil {
		return fail(cmd, err)
	}

	cfg := config.Get()
	client, err := backoffice.NewFromConfig(cfg)
	if err != nil {
		return fail(cmd, err)
	}

	perPage := listPerPage
	if perPage <= 0 {
		perPage = cfg.Screens.PerPage
	}

	fields := map[string]string{}
	set := func(flag, field, value string) {
		if cmd.Flags().Changed(flag) {
			fields[field] = value
		}
	}
	set("from-date", pager.FieldFromDate, listFromDate)
	set("to-date", pager.FieldToDate, listToDate)
	set("ref", pager.FieldBookingIDOrPNR, listRef)
	set("agent", pager.FieldAgentSLOrName, listAgent)
	set("status", pager.FieldStatus, listStatus)

	result, err := screen.list(cmd.Context(), client, listOptions{
		fields:  fields,
		page:    listPage,
		perPage: perPage,
	})
	if err != nil {
		return fail(cmd, err)
	}

	if listOutput == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result.page)
	}
	printListing(cmd.OutOrStdout(), screen.title, result)
	return nil
}

func printListing(w io.Writer, title string, l *listing) {
	fmt.Fprintf(w, "%s\n", title)

	if len(l.rows) == 0 {
		fmt.Fprintln(w, "No records match the current filters.")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header(l.header)
		for _, row := range l.rows {
			table.Append(row)
		}
		table.Render()
	}

	p := l.pagination
	from, to := p.Window(len(l.rows))
	fmt.Fprintf(w, "Showing %d-%d of %d · page %d/%d\n", from, to, p.Total, p.CurrentPage, p.LastPage)
}

// fail prints the user-facing message of err and returns it so Execute exits 1
func fail(cmd *cobra.Command, err error) error {
	msg := err.Error()
	if isFetchError(err) {
		msg = pager.UserMessage(err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", msg)
	return err
}

func isFetchError(err error) bool {
	var netErr *pager.NetworkError
	var serverErr *pager.ServerError
	return errors.As(err, &netErr) || errors.As(err, &serverErr)
}
