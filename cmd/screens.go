package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"

	attractionbookings "github.com/benedict-erwin/agency-console/internal/entities/attraction_bookings"
	busbookings "github.com/benedict-erwin/agency-console/internal/entities/bus_bookings"
	flightbookings "github.com/benedict-erwin/agency-console/internal/entities/flight_bookings"
	hotelbookings "github.com/benedict-erwin/agency-console/internal/entities/hotel_bookings"
	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	supporttickets "github.com/benedict-erwin/agency-console/internal/entities/support_tickets"
	"github.com/benedict-erwin/agency-console/pkg/backoffice"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

// listOptions is what the list command asks of a screen
type listOptions struct {
	fields  map[string]string
	page    int
	perPage int
}

// listing is one fetched page, already rendered to strings
type listing struct {
	header     []string
	rows       [][]string
	page       any // *pager.Page of the screen record, for JSON output
	pagination pager.Pagination
}

// screenOps erases the record type of a screen so commands can pick one by name
type screenOps struct {
	name       string
	title      string
	statusPath string
	list       func(ctx context.Context, c *backoffice.Client, opts listOptions) (*listing, error)
	browse     func(ctx context.Context, c *backoffice.Client, perPage int) error
}

var screenNames = []string{"bus", "attractions", "hotels", "flights", "tickets"}

func lookupScreen(name string) (screenOps, error) {
	switch strings.ToLower(name) {
	case "bus":
		return opsFor(busbookings.GetScreenConfig()), nil
	case "attractions":
		return opsFor(attractionbookings.GetScreenConfig()), nil
	case "hotels":
		return opsFor(hotelbookings.GetScreenConfig()), nil
	case "flights":
		return opsFor(flightbookings.GetScreenConfig()), nil
	case "tickets":
		return opsFor(supporttickets.GetScreenConfig()), nil
	}
	return screenOps{}, fmt.Errorf("unknown screen %q (available: %s)", name, strings.Join(screenNames, ", "))
}

func opsFor[T screens.Filterable](cfg screens.Config[T]) screenOps {
	return screenOps{
		name:       cfg.Name,
		title:      cfg.Title,
		statusPath: cfg.StatusPath,
		list: func(ctx context.Context, c *backoffice.Client, opts listOptions) (*listing, error) {
			return fetchListing(ctx, c, cfg, opts)
		},
		browse: func(ctx context.Context, c *backoffice.Client, perPage int) error {
			return runBrowser(ctx, c, cfg, perPage)
		},
	}
}

// fetchListing drives a controller through one search and an optional page jump
func fetchListing[T screens.Filterable](ctx context.Context, c *backoffice.Client, cfg screens.Config[T], opts listOptions) (*listing, error) {
	filters := cfg.DefaultFilters(opts.perPage)
	for _, name := range cfg.Fields {
		value, ok := opts.fields[name]
		if !ok {
			continue
		}
		if err := filters.Set(name, value); err != nil {
			return nil, err
		}
	}

	ctrl := pager.New(backoffice.ListFetcher[T](c, cfg.ListPath), pager.WithName[T](cfg.Name))
	if err := ctrl.Initialize(ctx, filters); err != nil {
		return nil, err
	}

	if opts.page > 1 {
		moved, err := ctrl.GoToPage(ctx, opts.page)
		if err != nil {
			return nil, err
		}
		if !moved {
			return nil, fmt.Errorf("page %d is out of range, last page is %d", opts.page, ctrl.Snapshot().Pagination.LastPage)
		}
	}

	state := ctrl.Snapshot()
	statusCol := slices.Index(cfg.Header(), "Status")

	out := &listing{
		header:     cfg.Header(),
		rows:       make([][]string, 0, len(state.Items)),
		pagination: state.Pagination,
		page:       &pager.Page[T]{Data: state.Items, Pagination: state.Pagination},
	}
	for _, item := range state.Items {
		row := cfg.Row(item)
		if statusCol >= 0 {
			row[statusCol] = colorStatus(item.StatusCode(), row[statusCol])
		}
		out.rows = append(out.rows, row)
	}
	return out, nil
}

// colorStatus paints a status cell by how settled the record is. fatih/color
// turns itself off when stdout is not a terminal.
func colorStatus(code, text string) string {
	switch code {
	case "CONFIRMED", "BOOKED", "TICKETED", "RESOLVED":
		return color.New(color.FgGreen).Sprint(text)
	case "PENDING", "OPEN", "IN_PROGRESS", "WAITING_ON_AGENT":
		return color.New(color.FgYellow).Sprint(text)
	case "CANCELLED", "FAILED":
		return color.New(color.FgRed).Sprint(text)
	case "REFUNDED", "CLOSED":
		return color.New(color.FgCyan).Sprint(text)
	}
	return text
}
