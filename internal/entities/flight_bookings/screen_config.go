package flightbookings

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/pkg/auth"
)

var (
	airlines = []string{"Biman", "US-Bangla", "Emirates", "Singapore Airlines", "Qatar Airways", "Malaysia Airlines"}
	airports = []string{"DAC", "CGP", "ZYL", "DXB", "SIN", "KUL", "BKK", "DOH"}
)

// GetScreenConfig returns the screen configuration for flight bookings
func GetScreenConfig() screens.Config[FlightBooking] {
	return screens.Config[FlightBooking]{
		Name:       "flights",
		Title:      "Flight Bookings",
		Resource:   auth.ResourceBookings,
		ListPath:   "bookings/flights",
		StatusPath: "statuses/flights",
		Fields:     screens.StandardFields,
		Columns: []screens.Column[FlightBooking]{
			{Header: "Booking ID", Value: func(b FlightBooking) string { return b.BookingID }},
			{Header: "PNR", Value: func(b FlightBooking) string { return b.PNR }},
			{Header: "Agent", Value: func(b FlightBooking) string { return b.AgentSL + " " + b.AgentName }},
			{Header: "Airline", Value: func(b FlightBooking) string { return b.Airline }},
			{Header: "Sector", Value: func(b FlightBooking) string { return b.Origin + "-" + b.Destination }},
			{Header: "Departs", Value: func(b FlightBooking) string { return b.DepartDate }},
			{Header: "Pax", Value: func(b FlightBooking) string { return strconv.Itoa(b.Passengers) }},
			{Header: "Fare", Value: func(b FlightBooking) string { return screens.Money(b.Fare) }},
			{Header: "Status", Value: func(b FlightBooking) string { return b.Status }},
			{Header: "Booked", Value: func(b FlightBooking) string { return b.BookedAt }},
		},
		Statuses: []screens.StatusEntry{
			{Code: "PENDING", Label: "Pending"},
			{Code: "BOOKED", Label: "Booked"},
			{Code: "TICKETED", Label: "Ticketed"},
			{Code: "CANCELLED", Label: "Cancelled"},
			{Code: "REFUNDED", Label: "Refunded"},
		},
		Generate: generate,
	}
}

func generate(rng *rand.Rand, i int, now time.Time) FlightBooking {
	agent := screens.PickAgent(rng)
	booked := screens.DaysBefore(rng, now, 90)
	origin := screens.Pick(rng, airports)
	dest := screens.Pick(rng, airports)
	for dest == origin {
		dest = screens.Pick(rng, airports)
	}
	pax := 1 + rng.IntN(5)

	return FlightBooking{
		ID:          i + 1,
		BookingID:   screens.Reference("FLT", i),
		PNR:         screens.PNR(rng),
		AgentSL:     agent.SL,
		AgentName:   agent.Name,
		Airline:     screens.Pick(rng, airlines),
		Origin:      origin,
		Destination: dest,
		DepartDate:  screens.Date(screens.DaysAfter(rng, booked, 120)),
		Passengers:  pax,
		Fare:        float64(pax) * screens.Amount(rng, 90, 950),
		Status:      screens.Pick(rng, []string{"PENDING", "BOOKED", "TICKETED", "TICKETED", "CANCELLED", "REFUNDED"}),
		BookedAt:    screens.Date(booked),
	}
}
