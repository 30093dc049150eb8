package domain

import "time"

type Flight struct {
	ID            uint      `json:"id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	RouteID       uint      `json:"route_id"`
	AirplaneID    uint      `json:"airplane_id"`
	Route         Route     `json:"route"`
	Airplane      Airplane  `json:"airplane"`
	Crew          []Crew    `json:"crew"`
}

// SeatPlace is a single taken (row, seat) coordinate on a flight, exposed
// on flight detail views so clients can compute availability themselves.
type SeatPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}
