package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrAirportNotFound = errors.New("airport not found")
	ErrRouteNotFound   = errors.New("route not found")
)

type Airport struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	ClosestBigCity string `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Route struct {
	ID            uint `gorm:"primaryKey"`
	Distance      int  `gorm:"not null"`
	SourceID      uint `gorm:"not null;index"`
	DestinationID uint `gorm:"not null;index"`
	Source        Airport
	Destination   Airport
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AirportDAO struct {
	db *gorm.DB
}

func NewAirportDAO(db *gorm.DB) *AirportDAO {
	return &AirportDAO{
		db: db,
	}
}

func (d *AirportDAO) Insert(ctx context.Context, airport Airport) (Airport, error) {
	result := d.db.WithContext(ctx).Create(&airport)
	if result.Error != nil {
		return Airport{}, result.Error
	}

	return airport, nil
}

func (d *AirportDAO) FindByID(ctx context.Context, id uint) (Airport, error) {
	var airport Airport

	result := d.db.WithContext(ctx).First(&airport, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Airport{}, ErrAirportNotFound
		}

		return Airport{}, result.Error
	}

	return airport, nil
}

func (d *AirportDAO) FindAll(ctx context.Context) ([]Airport, error) {
	var airports []Airport

	result := d.db.WithContext(ctx).Order("name").Find(&airports)
	if result.Error != nil {
		return nil, result.Error
	}

	return airports, nil
}

func (d *AirportDAO) Update(ctx context.Context, airport Airport) (Airport, error) {
	result := d.db.WithContext(ctx).Model(&Airport{ID: airport.ID}).Updates(map[string]interface{}{
		"name":             airport.Name,
		"closest_big_city": airport.ClosestBigCity,
	})
	if result.Error != nil {
		return Airport{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Airport{}, ErrAirportNotFound
	}

	return d.FindByID(ctx, airport.ID)
}

func (d *AirportDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Airport{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirportNotFound
	}

	return nil
}

type RouteDAO struct {
	db *gorm.DB
}

func NewRouteDAO(db *gorm.DB) *RouteDAO {
	return &RouteDAO{
		db: db,
	}
}

func (d *RouteDAO) Insert(ctx context.Context, route Route) (Route, error) {
	result := d.db.WithContext(ctx).Create(&route)
	if result.Error != nil {
		return Route{}, result.Error
	}

	return d.FindByID(ctx, route.ID)
}

func (d *RouteDAO) FindByID(ctx context.Context, id uint) (Route, error) {
	var route Route

	result := d.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		First(&route, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Route{}, ErrRouteNotFound
		}

		return Route{}, result.Error
	}

	return route, nil
}

// FindAll lists routes, optionally narrowed to the given source and/or
// destination airport IDs. Empty slices mean no filtering.
func (d *RouteDAO) FindAll(ctx context.Context, sourceIDs, destinationIDs []uint) ([]Route, error) {
	var routes []Route

	query := d.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination")

	if len(sourceIDs) > 0 {
		query = query.Where("source_id IN ?", sourceIDs)
	}
	if len(destinationIDs) > 0 {
		query = query.Where("destination_id IN ?", destinationIDs)
	}

	result := query.Find(&routes)
	if result.Error != nil {
		return nil, result.Error
	}

	return routes, nil
}

func (d *RouteDAO) Update(ctx context.Context, route Route) (Route, error) {
	result := d.db.WithContext(ctx).Model(&Route{ID: route.ID}).Updates(map[string]interface{}{
		"distance":       route.Distance,
		"source_id":      route.SourceID,
		"destination_id": route.DestinationID,
	})
	if result.Error != nil {
		return Route{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Route{}, ErrRouteNotFound
	}

	return d.FindByID(ctx, route.ID)
}

func (d *RouteDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Route{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRouteNotFound
	}

	return nil
}
