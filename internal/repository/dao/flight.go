package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrFlightNotFound = errors.New("flight not found")

type Flight struct {
	ID            uint      `gorm:"primaryKey"`
	DepartureTime time.Time `gorm:"not null"`
	ArrivalTime   time.Time `gorm:"not null"`
	RouteID       uint      `gorm:"not null;index"`
	AirplaneID    uint      `gorm:"not null;index"`
	Route         Route
	Airplane      Airplane
	Crew          []Crew `gorm:"many2many:flight_crew;"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type FlightDAO struct {
	db *gorm.DB
}

func NewFlightDAO(db *gorm.DB) *FlightDAO {
	return &FlightDAO{
		db: db,
	}
}

func (d *FlightDAO) preloaded(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.AirplaneType").
		Preload("Crew")
}

func (d *FlightDAO) Insert(ctx context.Context, flight Flight) (Flight, error) {
	result := d.db.WithContext(ctx).Create(&flight)
	if result.Error != nil {
		return Flight{}, result.Error
	}

	return d.FindByID(ctx, flight.ID)
}

func (d *FlightDAO) FindByID(ctx context.Context, id uint) (Flight, error) {
	var flight Flight

	result := d.preloaded(ctx).First(&flight, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Flight{}, ErrFlightNotFound
		}

		return Flight{}, result.Error
	}

	return flight, nil
}

func (d *FlightDAO) FindAll(ctx context.Context) ([]Flight, error) {
	var flights []Flight

	result := d.preloaded(ctx).Order("departure_time").Find(&flights)
	if result.Error != nil {
		return nil, result.Error
	}

	return flights, nil
}

// CountTicketsByFlight returns the number of committed tickets per flight
// ID. Flights with no tickets are absent from the map.
func (d *FlightDAO) CountTicketsByFlight(ctx context.Context) (map[uint]int, error) {
	type flightCount struct {
		FlightID uint
		Sold     int
	}

	var counts []flightCount
	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Select("flight_id, count(*) as sold").
		Group("flight_id").
		Find(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	sold := make(map[uint]int, len(counts))
	for _, c := range counts {
		sold[c.FlightID] = c.Sold
	}

	return sold, nil
}

// FindTakenSeats returns the (row, seat) pairs of every ticket issued for
// the flight, ordered for stable output.
func (d *FlightDAO) FindTakenSeats(ctx context.Context, flightID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Order(`"row", seat`).
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *FlightDAO) Update(ctx context.Context, flight Flight) (Flight, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Flight{ID: flight.ID}).Updates(map[string]interface{}{
			"departure_time": flight.DepartureTime,
			"arrival_time":   flight.ArrivalTime,
			"route_id":       flight.RouteID,
			"airplane_id":    flight.AirplaneID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFlightNotFound
		}

		return tx.Model(&Flight{ID: flight.ID}).Association("Crew").Replace(flight.Crew)
	})
	if err != nil {
		return Flight{}, err
	}

	return d.FindByID(ctx, flight.ID)
}

func (d *FlightDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Flight{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFlightNotFound
	}

	return nil
}
