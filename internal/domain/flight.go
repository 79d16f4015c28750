package domain

type Flight struct {
	ID         int64  `json:"id"`
	FlightName string `json:"flight_name"`
}
