package domain

type Ticket struct {
	ID         int64  `json:"id"`
	Ticket     string `json:"ticket"`
	TicketCode string `json:"ticket_code"`
}
