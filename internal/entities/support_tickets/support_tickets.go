package supporttickets

// SupportTicket is a support request raised by an agent about a booking
type SupportTicket struct {
	ID         int    `json:"id"`
	TicketNo   string `json:"ticket_no"`
	BookingRef string `json:"booking_ref"`
	AgentSL    string `json:"agent_sl"`
	AgentName  string `json:"agent_name"`
	Subject    string `json:"subject"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	OpenedAt   string `json:"opened_at"`
	UpdatedAt  string `json:"updated_at"`
}

// RecordDate filters tickets on the day they were opened
func (t SupportTicket) RecordDate() string { return t.OpenedAt }

func (t SupportTicket) References() []string { return []string{t.TicketNo, t.BookingRef} }

func (t SupportTicket) Agents() []string { return []string{t.AgentSL, t.AgentName} }

func (t SupportTicket) StatusCode() string { return t.Status }
