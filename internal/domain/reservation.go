package domain

// Reservation links a user, a flight and a ticket. The table is created at
// boot but no endpoint populates it yet.
type Reservation struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	FlightID int64 `json:"flight_id"`
	TicketID int64 `json:"ticket_id"`
}
