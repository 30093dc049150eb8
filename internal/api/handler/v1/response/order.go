package response

import (
	"time"

	"github.com/saywin/airport-api-service/internal/domain"
)

type Ticket struct {
	ID     uint `json:"id"`
	Row    int  `json:"row"`
	Seat   int  `json:"seat"`
	Flight uint `json:"flight"`
}

// TicketDetail replaces the flight ID with a flight summary, for the
// order retrieve view.
type TicketDetail struct {
	ID     uint          `json:"id"`
	Row    int           `json:"row"`
	Seat   int           `json:"seat"`
	Flight FlightSummary `json:"flight"`
}

type Order struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

type OrderDetail struct {
	ID        uint           `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Tickets   []TicketDetail `json:"tickets"`
}

// OrderPage is the paginated envelope for order listings.
type OrderPage struct {
	Count    int64   `json:"count"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Results  []Order `json:"results"`
}

func NewOrder(order domain.Order) Order {
	tickets := make([]Ticket, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		tickets = append(tickets, Ticket{
			ID:     t.ID,
			Row:    t.Row,
			Seat:   t.Seat,
			Flight: t.FlightID,
		})
	}

	return Order{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}

func NewOrderDetail(order domain.Order) OrderDetail {
	tickets := make([]TicketDetail, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		detail := TicketDetail{
			ID:   t.ID,
			Row:  t.Row,
			Seat: t.Seat,
		}
		if t.Flight != nil {
			detail.Flight = NewFlightSummary(*t.Flight)
		}
		tickets = append(tickets, detail)
	}

	return OrderDetail{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}

func NewOrderPage(orders []domain.Order, total int64, page, pageSize int) OrderPage {
	results := make([]Order, 0, len(orders))
	for _, o := range orders {
		results = append(results, NewOrder(o))
	}

	return OrderPage{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	}
}
