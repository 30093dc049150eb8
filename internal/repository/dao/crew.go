package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCrewNotFound = errors.New("crew member not found")

type Crew struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Crew) TableName() string {
	return "crew"
}

type CrewDAO struct {
	db *gorm.DB
}

func NewCrewDAO(db *gorm.DB) *CrewDAO {
	return &CrewDAO{
		db: db,
	}
}

func (d *CrewDAO) Insert(ctx context.Context, crew Crew) (Crew, error) {
	result := d.db.WithContext(ctx).Create(&crew)
	if result.Error != nil {
		return Crew{}, result.Error
	}

	return crew, nil
}

func (d *CrewDAO) FindByID(ctx context.Context, id uint) (Crew, error) {
	var crew Crew

	result := d.db.WithContext(ctx).First(&crew, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Crew{}, ErrCrewNotFound
		}

		return Crew{}, result.Error
	}

	return crew, nil
}

func (d *CrewDAO) FindAll(ctx context.Context) ([]Crew, error) {
	var crew []Crew

	result := d.db.WithContext(ctx).Order("last_name, first_name").Find(&crew)
	if result.Error != nil {
		return nil, result.Error
	}

	return crew, nil
}

func (d *CrewDAO) FindByIDs(ctx context.Context, ids []uint) ([]Crew, error) {
	var crew []Crew

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&crew)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(crew) != len(ids) {
		return nil, ErrCrewNotFound
	}

	return crew, nil
}

func (d *CrewDAO) Update(ctx context.Context, crew Crew) (Crew, error) {
	result := d.db.WithContext(ctx).Model(&Crew{ID: crew.ID}).Updates(map[string]interface{}{
		"first_name": crew.FirstName,
		"last_name":  crew.LastName,
	})
	if result.Error != nil {
		return Crew{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Crew{}, ErrCrewNotFound
	}

	return d.FindByID(ctx, crew.ID)
}

func (d *CrewDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Crew{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCrewNotFound
	}

	return nil
}
