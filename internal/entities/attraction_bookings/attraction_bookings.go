package attractionbookings

// AttractionBooking is a ticket booking for a park, museum or tour
type AttractionBooking struct {
	ID         int     `json:"id"`
	BookingID  string  `json:"booking_id"`
	AgentSL    string  `json:"agent_sl"`
	AgentName  string  `json:"agent_name"`
	Attraction string  `json:"attraction"`
	City       string  `json:"city"`
	VisitDate  string  `json:"visit_date"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	BookedAt   string  `json:"booked_at"`
}

func (b AttractionBooking) RecordDate() string { return b.BookedAt }

func (b AttractionBooking) References() []string { return []string{b.BookingID} }

func (b AttractionBooking) Agents() []string { return []string{b.AgentSL, b.AgentName} }

func (b AttractionBooking) StatusCode() string { return b.Status }
