package hotelbookings

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/pkg/auth"
)

var hotels = []struct{ name, city string }{
	{"Marina Bay Sands", "Singapore"},
	{"Atlantis The Palm", "Dubai"},
	{"Mandarin Oriental", "Bangkok"},
	{"Sayeman Beach Resort", "Cox's Bazar"},
	{"Grand Hyatt", "Kuala Lumpur"},
	{"Pan Pacific Sonargaon", "Dhaka"},
}

// GetScreenConfig returns the screen configuration for hotel bookings
func GetScreenConfig() screens.Config[HotelBooking] {
	return screens.Config[HotelBooking]{
		Name:       "hotels",
		Title:      "Hotel Bookings",
		Resource:   auth.ResourceBookings,
		ListPath:   "bookings/hotels",
		StatusPath: "statuses/hotels",
		Fields:     screens.StandardFields,
		Columns: []screens.Column[HotelBooking]{
			{Header: "Booking ID", Value: func(b HotelBooking) string { return b.BookingID }},
			{Header: "Conf. No", Value: func(b HotelBooking) string { return b.Confirmation }},
			{Header: "Agent", Value: func(b HotelBooking) string { return b.AgentSL + " " + b.AgentName }},
			{Header: "Hotel", Value: func(b HotelBooking) string { return b.Hotel + ", " + b.City }},
			{Header: "Stay", Value: func(b HotelBooking) string { return b.CheckIn + " - " + b.CheckOut }},
			{Header: "Rooms", Value: func(b HotelBooking) string { return strconv.Itoa(b.Rooms) }},
			{Header: "Amount", Value: func(b HotelBooking) string { return screens.Money(b.Amount) }},
			{Header: "Status", Value: func(b HotelBooking) string { return b.Status }},
			{Header: "Booked", Value: func(b HotelBooking) string { return b.BookedAt }},
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

func generate(rng *rand.Rand, i int, now time.Time) HotelBooking {
	agent := screens.PickAgent(rng)
	booked := screens.DaysBefore(rng, now, 90)
	h := screens.Pick(rng, hotels)
	checkIn := screens.DaysAfter(rng, booked, 45)
	nights := 1 + rng.IntN(6)
	rooms := 1 + rng.IntN(3)

	return HotelBooking{
		ID:           i + 1,
		BookingID:    screens.Reference("HTL", i),
		Confirmation: screens.PNR(rng) + screens.PNR(rng)[:2],
		AgentSL:      agent.SL,
		AgentName:    agent.Name,
		Hotel:        h.name,
		City:         h.city,
		CheckIn:      screens.Date(checkIn),
		CheckOut:     screens.Date(checkIn.AddDate(0, 0, nights)),
		Rooms:        rooms,
		Amount:       float64(rooms*nights) * screens.Amount(rng, 60, 420),
		Status:       screens.Pick(rng, []string{"PENDING", "CONFIRMED", "CONFIRMED", "CANCELLED", "REFUNDED", "FAILED"}),
		BookedAt:     screens.Date(booked),
	}
}
