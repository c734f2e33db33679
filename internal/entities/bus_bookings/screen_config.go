package busbookings

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/pkg/auth"
)

var (
	operators = []string{"Greenline", "Hanif Express", "Shyamoli NR", "Ena Transport", "Soudia"}
	cities    = []string{"Dhaka", "Chattogram", "Sylhet", "Cox's Bazar", "Rajshahi", "Khulna"}
)

// GetScreenConfig returns the screen configuration for bus bookings
func GetScreenConfig() screens.Config[BusBooking] {
	return screens.Config[BusBooking]{
		Name:       "bus",
		Title:      "Bus Bookings",
		Resource:   auth.ResourceBookings,
		ListPath:   "bookings/bus",
		StatusPath: "statuses/bus",
		Fields:     screens.StandardFields,
		Columns: []screens.Column[BusBooking]{
			{Header: "Booking ID", Value: func(b BusBooking) string { return b.BookingID }},
			{Header: "PNR", Value: func(b BusBooking) string { return b.PNR }},
			{Header: "Agent", Value: func(b BusBooking) string { return b.AgentSL + " " + b.AgentName }},
			{Header: "Route", Value: func(b BusBooking) string { return b.FromCity + " → " + b.ToCity }},
			{Header: "Journey", Value: func(b BusBooking) string { return b.JourneyDate }},
			{Header: "Seats", Value: func(b BusBooking) string { return strconv.Itoa(b.Seats) }},
			{Header: "Fare", Value: func(b BusBooking) string { return screens.Money(b.Fare) }},
			{Header: "Status", Value: func(b BusBooking) string { return b.Status }},
			{Header: "Booked", Value: func(b BusBooking) string { return b.BookedAt }},
		},
		Statuses: []screens.StatusEntry{
			{Code: "PENDING", Label: "Pending"},
			{Code: "CONFIRMED", Label: "Confirmed"},
			{Code: "CANCELLED", Label: "Cancelled"},
			{Code: "REFUNDED", Label: "Refunded"},
			{Code: "FAILED", Label: "Failed"},
		},
		Generate: generate,
	}
}

func generate(rng *rand.Rand, i int, now time.Time) BusBooking {
	agent := screens.PickAgent(rng)
	booked := screens.DaysBefore(rng, now, 90)
	from := screens.Pick(rng, cities)
	to := screens.Pick(rng, cities)
	for to == from {
		to = screens.Pick(rng, cities)
	}
	seats := 1 + rng.IntN(4)

	return BusBooking{
		ID:          i + 1,
		BookingID:   screens.Reference("BUS", i),
		PNR:         screens.PNR(rng),
		AgentSL:     agent.SL,
		AgentName:   agent.Name,
		Operator:    screens.Pick(rng, operators),
		FromCity:    from,
		ToCity:      to,
		JourneyDate: screens.Date(screens.DaysAfter(rng, booked, 30)),
		Seats:       seats,
		Fare:        float64(seats) * screens.Amount(rng, 8, 45),
		Status:      screens.Pick(rng, []string{"PENDING", "CONFIRMED", "CONFIRMED", "CANCELLED", "REFUNDED", "FAILED"}),
		BookedAt:    screens.Date(booked),
	}
}
