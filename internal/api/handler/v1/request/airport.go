package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AirportRequest struct {
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func (req *AirportRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.ClosestBigCity, validation.Required, validation.Length(1, 255)),
	)
}

type RouteRequest struct {
	Distance    int  `json:"distance"`
	Source      uint `json:"source"`
	Destination uint `json:"destination"`
}

func (req *RouteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Distance, validation.Required, validation.Min(1)),
		validation.Field(&req.Source, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Destination, validation.Required, validation.Min(uint(1))),
	)
}
