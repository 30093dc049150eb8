package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrSeatTaken     = errors.New("seat is already taken for this flight")
)

type Order struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index"`
	User      User
	Tickets   []Ticket `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ticket rows carry a composite unique index on (flight_id, row, seat).
// The index is what turns a concurrent double-booking into a retryable
// conflict instead of two committed tickets for one seat.
type Ticket struct {
	ID       uint `gorm:"primaryKey"`
	Row      int  `gorm:"not null;uniqueIndex:idx_ticket_flight_seat"`
	Seat     int  `gorm:"not null;uniqueIndex:idx_ticket_flight_seat"`
	FlightID uint `gorm:"not null;uniqueIndex:idx_ticket_flight_seat,priority:1"`
	OrderID  uint `gorm:"not null;index"`
	Flight   Flight
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// InsertWithTickets persists the order row and all its ticket rows in one
// transaction: either every row is committed or none is. A unique-index
// violation on the seat index surfaces as ErrSeatTaken so the caller can
// retry with different seats.
func (d *OrderDAO) InsertWithTickets(ctx context.Context, order Order, tickets []Ticket) (Order, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range tickets {
			tickets[i].OrderID = order.ID
		}
		if err := tx.Create(&tickets).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			pgErr.ConstraintName == "idx_ticket_flight_seat" {
			return Order{}, ErrSeatTaken
		}

		return Order{}, err
	}

	return d.findByID(ctx, order.ID)
}

func (d *OrderDAO) findByID(ctx context.Context, id uint) (Order, error) {
	var order Order

	result := d.db.WithContext(ctx).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("tickets.row, tickets.seat")
		}).
		First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

// FindByIDForUser loads a single order restricted to the owning user.
// Orders belonging to anyone else are indistinguishable from missing ones.
func (d *OrderDAO) FindByIDForUser(ctx context.Context, id, userID uint) (Order, error) {
	var order Order

	result := d.db.WithContext(ctx).
		Preload("Tickets.Flight.Route.Source").
		Preload("Tickets.Flight.Route.Destination").
		Preload("Tickets.Flight.Airplane.AirplaneType").
		Preload("Tickets.Flight.Crew").
		Where("user_id = ?", userID).
		First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

// FindByUserID lists the user's orders, newest first, with offset/limit
// pagination. The second return value is the total number of orders the
// user owns, for building the paginated envelope.
func (d *OrderDAO) FindByUserID(ctx context.Context, userID uint, offset, limit int) ([]Order, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).
		Model(&Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []Order
	result := d.db.WithContext(ctx).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("tickets.row, tickets.seat")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return orders, total, nil
}
