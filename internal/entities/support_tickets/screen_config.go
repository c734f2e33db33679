package supporttickets

import (
	"math/rand/v2"
	"time"

	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/pkg/auth"
)

var (
	subjects = []string{
		"Refund not received",
		"Name correction request",
		"Date change request",
		"Duplicate charge",
		"Voucher not delivered",
		"Cancellation fee dispute",
	}
	priorities = []string{"LOW", "NORMAL", "NORMAL", "HIGH", "URGENT"}
	prefixes   = []string{"BUS", "ATT", "HTL", "FLT"}
)

// GetScreenConfig returns the screen configuration for support tickets
func GetScreenConfig() screens.Config[SupportTicket] {
	return screens.Config[SupportTicket]{
		Name:       "tickets",
		Title:      "Support Tickets",
		Resource:   auth.ResourceTickets,
		ListPath:   "tickets",
		StatusPath: "statuses/tickets",
		Fields:     screens.StandardFields,
		Columns: []screens.Column[SupportTicket]{
			{Header: "Ticket", Value: func(t SupportTicket) string { return t.TicketNo }},
			{Header: "Booking", Value: func(t SupportTicket) string { return t.BookingRef }},
			{Header: "Agent", Value: func(t SupportTicket) string { return t.AgentSL + " " + t.AgentName }},
			{Header: "Subject", Value: func(t SupportTicket) string { return t.Subject }},
			{Header: "Priority", Value: func(t SupportTicket) string { return t.Priority }},
			{Header: "Status", Value: func(t SupportTicket) string { return t.Status }},
			{Header: "Opened", Value: func(t SupportTicket) string { return t.OpenedAt }},
			{Header: "Updated", Value: func(t SupportTicket) string { return t.UpdatedAt }},
		},
		Statuses: []screens.StatusEntry{
			{Code: "OPEN", Label: "Open"},
			{Code: "IN_PROGRESS", Label: "In Progress"},
			{Code: "WAITING_ON_AGENT", Label: "Waiting on Agent"},
			{Code: "RESOLVED", Label: "Resolved"},
			{Code: "CLOSED", Label: "Closed"},
		},
		Generate: generate,
	}
}

func generate(rng *rand.Rand, i int, now time.Time) SupportTicket {
	agent := screens.PickAgent(rng)
	opened := screens.DaysBefore(rng, now, 60)
	updated := screens.DaysAfter(rng, opened, 10)
	if updated.After(now) {
		updated = now
	}

	return SupportTicket{
		ID:         i + 1,
		TicketNo:   screens.Reference("TKT", i),
		BookingRef: screens.Reference(screens.Pick(rng, prefixes), rng.IntN(120)),
		AgentSL:    agent.SL,
		AgentName:  agent.Name,
		Subject:    screens.Pick(rng, subjects),
		Priority:   screens.Pick(rng, priorities),
		Status:     screens.Pick(rng, []string{"OPEN", "OPEN", "IN_PROGRESS", "WAITING_ON_AGENT", "RESOLVED", "CLOSED"}),
		OpenedAt:   screens.Date(opened),
		UpdatedAt:  screens.Date(updated),
	}
}
