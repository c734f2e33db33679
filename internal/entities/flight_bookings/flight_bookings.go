package flightbookings

// FlightBooking is an air booking, identified by booking id and airline PNR
type FlightBooking struct {
	ID          int     `json:"id"`
	BookingID   string  `json:"booking_id"`
	PNR         string  `json:"pnr"`
	AgentSL     string  `json:"agent_sl"`
	AgentName   string  `json:"agent_name"`
	Airline     string  `json:"airline"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DepartDate  string  `json:"depart_date"`
	Passengers  int     `json:"passengers"`
	Fare        float64 `json:"fare"`
	Status      string  `json:"status"`
	BookedAt    string  `json:"booked_at"`
}

func (b FlightBooking) RecordDate() string { return b.BookedAt }

func (b FlightBooking) References() []string { return []string{b.BookingID, b.PNR} }

func (b FlightBooking) Agents() []string { return []string{b.AgentSL, b.AgentName} }

func (b FlightBooking) StatusCode() string { return b.Status }
