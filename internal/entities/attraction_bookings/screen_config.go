package attractionbookings

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/pkg/auth"
)

type venue struct {
	name string
	city string
}

var venues = []venue{
	{"Burj Khalifa At The Top", "Dubai"},
	{"Universal Studios", "Singapore"},
	{"Sentosa Cable Car", "Singapore"},
	{"Petronas Twin Towers", "Kuala Lumpur"},
	{"Phi Phi Island Tour", "Phuket"},
	{"Sea Life Bangkok", "Bangkok"},
}

// GetScreenConfig returns the screen configuration for attraction bookings
func GetScreenConfig() screens.Config[AttractionBooking] {
	return screens.Config[AttractionBooking]{
		Name:       "attractions",
		Title:      "Attraction Bookings",
		Resource:   auth.ResourceBookings,
		ListPath:   "bookings/attractions",
		StatusPath: "statuses/attractions",
		Fields:     screens.StandardFields,
		Columns: []screens.Column[AttractionBooking]{
			{Header: "Booking ID", Value: func(b AttractionBooking) string { return b.BookingID }},
			{Header: "Agent", Value: func(b AttractionBooking) string { return b.AgentSL + " " + b.AgentName }},
			{Header: "Attraction", Value: func(b AttractionBooking) string { return b.Attraction }},
			{Header: "City", Value: func(b AttractionBooking) string { return b.City }},
			{Header: "Visit", Value: func(b AttractionBooking) string { return b.VisitDate }},
			{Header: "Pax", Value: func(b AttractionBooking) string {
				return strconv.Itoa(b.Adults) + "A/" + strconv.Itoa(b.Children) + "C"
			}},
			{Header: "Amount", Value: func(b AttractionBooking) string { return screens.Money(b.Amount) }},
			{Header: "Status", Value: func(b AttractionBooking) string { return b.Status }},
			{Header: "Booked", Value: func(b AttractionBooking) string { return b.BookedAt }},
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

func generate(rng *rand.Rand, i int, now time.Time) AttractionBooking {
	agent := screens.PickAgent(rng)
	booked := screens.DaysBefore(rng, now, 90)
	v := screens.Pick(rng, venues)
	adults := 1 + rng.IntN(4)
	children := rng.IntN(3)

	return AttractionBooking{
		ID:         i + 1,
		BookingID:  screens.Reference("ATT", i),
		AgentSL:    agent.SL,
		AgentName:  agent.Name,
		Attraction: v.name,
		City:       v.city,
		VisitDate:  screens.Date(screens.DaysAfter(rng, booked, 60)),
		Adults:     adults,
		Children:   children,
		Amount:     float64(adults)*screens.Amount(rng, 20, 120) + float64(children)*screens.Amount(rng, 10, 60),
		Status:     screens.Pick(rng, []string{"PENDING", "CONFIRMED", "CONFIRMED", "CANCELLED", "REFUNDED", "FAILED"}),
		BookedAt:   screens.Date(booked),
	}
}
