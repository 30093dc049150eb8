package domain

import "time"

// Order is a bundle of tickets bought together by one user. An order and
// its tickets are created in a single transaction; an order without
// tickets never exists.
type Order struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

type Ticket struct {
	ID       uint    `json:"id"`
	Row      int     `json:"row"`
	Seat     int     `json:"seat"`
	FlightID uint    `json:"flight"`
	OrderID  uint    `json:"-"`
	Flight   *Flight `json:"-"`
}
