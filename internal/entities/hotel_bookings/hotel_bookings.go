package hotelbookings

// HotelBooking is a room reservation made by an agent
type HotelBooking struct {
	ID           int     `json:"id"`
	BookingID    string  `json:"booking_id"`
	Confirmation string  `json:"confirmation_no"`
	AgentSL      string  `json:"agent_sl"`
	AgentName    string  `json:"agent_name"`
	Hotel        string  `json:"hotel"`
	City         string  `json:"city"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Rooms        int     `json:"rooms"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	BookedAt     string  `json:"booked_at"`
}

func (b HotelBooking) RecordDate() string { return b.BookedAt }

// References matches either the booking id or the supplier confirmation number
func (b HotelBooking) References() []string { return []string{b.BookingID, b.Confirmation} }

func (b HotelBooking) Agents() []string { return []string{b.AgentSL, b.AgentName} }

func (b HotelBooking) StatusCode() string { return b.Status }
