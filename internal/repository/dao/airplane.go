package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrAirplaneTypeNotFound = errors.New("airplane type not found")
	ErrAirplaneNotFound     = errors.New("airplane not found")
)

type AirplaneType struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Airplane struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Rows           int    `gorm:"not null"`
	SeatsInRow     int    `gorm:"not null"`
	AirplaneTypeID uint   `gorm:"not null;index"`
	AirplaneType   AirplaneType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AirplaneTypeDAO struct {
	db *gorm.DB
}

func NewAirplaneTypeDAO(db *gorm.DB) *AirplaneTypeDAO {
	return &AirplaneTypeDAO{
		db: db,
	}
}

func (d *AirplaneTypeDAO) Insert(ctx context.Context, airplaneType AirplaneType) (AirplaneType, error) {
	result := d.db.WithContext(ctx).Create(&airplaneType)
	if result.Error != nil {
		return AirplaneType{}, result.Error
	}

	return airplaneType, nil
}

func (d *AirplaneTypeDAO) FindByID(ctx context.Context, id uint) (AirplaneType, error) {
	var airplaneType AirplaneType

	result := d.db.WithContext(ctx).First(&airplaneType, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AirplaneType{}, ErrAirplaneTypeNotFound
		}

		return AirplaneType{}, result.Error
	}

	return airplaneType, nil
}

func (d *AirplaneTypeDAO) FindAll(ctx context.Context) ([]AirplaneType, error) {
	var airplaneTypes []AirplaneType

	result := d.db.WithContext(ctx).Order("name").Find(&airplaneTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return airplaneTypes, nil
}

func (d *AirplaneTypeDAO) Update(ctx context.Context, airplaneType AirplaneType) (AirplaneType, error) {
	result := d.db.WithContext(ctx).Model(&AirplaneType{ID: airplaneType.ID}).
		Update("name", airplaneType.Name)
	if result.Error != nil {
		return AirplaneType{}, result.Error
	}
	if result.RowsAffected == 0 {
		return AirplaneType{}, ErrAirplaneTypeNotFound
	}

	return d.FindByID(ctx, airplaneType.ID)
}

func (d *AirplaneTypeDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&AirplaneType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirplaneTypeNotFound
	}

	return nil
}

type AirplaneDAO struct {
	db *gorm.DB
}

func NewAirplaneDAO(db *gorm.DB) *AirplaneDAO {
	return &AirplaneDAO{
		db: db,
	}
}

func (d *AirplaneDAO) Insert(ctx context.Context, airplane Airplane) (Airplane, error) {
	result := d.db.WithContext(ctx).Create(&airplane)
	if result.Error != nil {
		return Airplane{}, result.Error
	}

	return d.FindByID(ctx, airplane.ID)
}

func (d *AirplaneDAO) FindByID(ctx context.Context, id uint) (Airplane, error) {
	var airplane Airplane

	result := d.db.WithContext(ctx).Preload("AirplaneType").First(&airplane, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Airplane{}, ErrAirplaneNotFound
		}

		return Airplane{}, result.Error
	}

	return airplane, nil
}

// FindAll lists airplanes, optionally narrowed to the given airplane type
// IDs. An empty slice means no filtering.
func (d *AirplaneDAO) FindAll(ctx context.Context, typeIDs []uint) ([]Airplane, error) {
	var airplanes []Airplane

	query := d.db.WithContext(ctx).Preload("AirplaneType").Order("name")
	if len(typeIDs) > 0 {
		query = query.Where("airplane_type_id IN ?", typeIDs)
	}

	result := query.Find(&airplanes)
	if result.Error != nil {
		return nil, result.Error
	}

	return airplanes, nil
}

func (d *AirplaneDAO) Update(ctx context.Context, airplane Airplane) (Airplane, error) {
	result := d.db.WithContext(ctx).Model(&Airplane{ID: airplane.ID}).Updates(map[string]interface{}{
		"name":             airplane.Name,
		"rows":             airplane.Rows,
		"seats_in_row":     airplane.SeatsInRow,
		"airplane_type_id": airplane.AirplaneTypeID,
	})
	if result.Error != nil {
		return Airplane{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Airplane{}, ErrAirplaneNotFound
	}

	return d.FindByID(ctx, airplane.ID)
}

func (d *AirplaneDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Airplane{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirplaneNotFound
	}

	return nil
}
