package busbookings

// BusBooking is one bus seat booking as listed by the back office
type BusBooking struct {
	ID          int     `json:"id"`
	BookingID   string  `json:"booking_id"`
	PNR         string  `json:"pnr"`
	AgentSL     string  `json:"agent_sl"`
	AgentName   string  `json:"agent_name"`
	Operator    string  `json:"operator"`
	FromCity    string  `json:"from_city"`
	ToCity      string  `json:"to_city"`
	JourneyDate string  `json:"journey_date"`
	Seats       int     `json:"seats"`
	Fare        float64 `json:"fare"`
	Status      string  `json:"status"`
	BookedAt    string  `json:"booked_at"` // YYYY-MM-DD
}

// RecordDate returns the booking date the date filters apply to
func (b BusBooking) RecordDate() string { return b.BookedAt }

// References returns the identifiers matched by the reference filter
func (b BusBooking) References() []string { return []string{b.BookingID, b.PNR} }

// Agents returns the agent identifiers matched by the agent filter
func (b BusBooking) Agents() []string { return []string{b.AgentSL, b.AgentName} }

// StatusCode returns the backend status enum
func (b BusBooking) StatusCode() string { return b.Status }
