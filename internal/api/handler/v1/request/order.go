package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type TicketRequest struct {
	Row    int  `json:"row"`
	Seat   int  `json:"seat"`
	Flight uint `json:"flight"`
}

func (req TicketRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Row, validation.Required, validation.Min(1)),
		validation.Field(&req.Seat, validation.Required, validation.Min(1)),
		validation.Field(&req.Flight, validation.Required, validation.Min(uint(1))),
	)
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}

func (req *CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Tickets, validation.Required, validation.Length(1, 0)),
	)
}
