package dao_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saywin/airport-api-service/internal/repository/dao"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("dockertest.NewPool -> %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=airport_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("pool.RunWithOptions -> %v", err)
	}
	_ = resource.Expire(180)

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=test password=test dbname=airport_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		var openErr error
		testDB, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := testDB.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}

	if err = dao.InitTables(testDB); err != nil {
		log.Fatalf("dao.InitTables -> %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("pool.Purge -> %v", err)
	}

	os.Exit(code)
}

// seedFlight builds the reference rows a ticket needs and returns the
// flight ID.
func seedFlight(t *testing.T) uint {
	t.Helper()

	source := dao.Airport{Name: "Source " + t.Name(), ClosestBigCity: "A"}
	destination := dao.Airport{Name: "Destination " + t.Name(), ClosestBigCity: "B"}
	require.NoError(t, testDB.Create(&source).Error)
	require.NoError(t, testDB.Create(&destination).Error)

	route := dao.Route{Distance: 500, SourceID: source.ID, DestinationID: destination.ID}
	require.NoError(t, testDB.Create(&route).Error)

	airplaneType := dao.AirplaneType{Name: "Type " + t.Name()}
	require.NoError(t, testDB.Create(&airplaneType).Error)

	airplane := dao.Airplane{Name: "Plane " + t.Name(), Rows: 10, SeatsInRow: 4, AirplaneTypeID: airplaneType.ID}
	require.NoError(t, testDB.Create(&airplane).Error)

	flight := dao.Flight{
		DepartureTime: time.Now().Add(24 * time.Hour),
		ArrivalTime:   time.Now().Add(26 * time.Hour),
		RouteID:       route.ID,
		AirplaneID:    airplane.ID,
	}
	require.NoError(t, testDB.Create(&flight).Error)

	return flight.ID
}

func seedUser(t *testing.T, email string) uint {
	t.Helper()

	user := dao.User{Email: email, Password: "hash", FirstName: "Test", LastName: "User"}
	require.NoError(t, testDB.Create(&user).Error)

	return user.ID
}

func TestOrderDAO_InsertWithTickets(t *testing.T) {
	ctx := context.Background()
	orderDAO := dao.NewOrderDAO(testDB)

	t.Run("commits order and tickets together", func(t *testing.T) {
		flightID := seedFlight(t)
		userID := seedUser(t, "atomic@example.com")

		order, err := orderDAO.InsertWithTickets(ctx, dao.Order{UserID: userID}, []dao.Ticket{
			{Row: 1, Seat: 1, FlightID: flightID},
			{Row: 1, Seat: 2, FlightID: flightID},
		})

		require.NoError(t, err)
		assert.NotZero(t, order.ID)
		assert.Len(t, order.Tickets, 2)
	})

	t.Run("duplicate seat rolls the whole order back", func(t *testing.T) {
		flightID := seedFlight(t)
		userID := seedUser(t, "conflict@example.com")

		_, err := orderDAO.InsertWithTickets(ctx, dao.Order{UserID: userID}, []dao.Ticket{
			{Row: 2, Seat: 2, FlightID: flightID},
		})
		require.NoError(t, err)

		var ordersBefore int64
		require.NoError(t, testDB.Model(&dao.Order{}).Where("user_id = ?", userID).Count(&ordersBefore).Error)

		_, err = orderDAO.InsertWithTickets(ctx, dao.Order{UserID: userID}, []dao.Ticket{
			{Row: 3, Seat: 3, FlightID: flightID},
			{Row: 2, Seat: 2, FlightID: flightID}, // already taken
		})
		assert.ErrorIs(t, err, dao.ErrSeatTaken)

		var ordersAfter int64
		require.NoError(t, testDB.Model(&dao.Order{}).Where("user_id = ?", userID).Count(&ordersAfter).Error)
		assert.Equal(t, ordersBefore, ordersAfter)

		var orphaned int64
		require.NoError(t, testDB.Model(&dao.Ticket{}).
			Where(`flight_id = ? AND "row" = 3 AND seat = 3`, flightID).
			Count(&orphaned).Error)
		assert.Zero(t, orphaned)
	})

	t.Run("same seat on another flight is fine", func(t *testing.T) {
		firstFlight := seedFlight(t)
		secondFlight := seedFlight(t)
		userID := seedUser(t, "twoflights@example.com")

		_, err := orderDAO.InsertWithTickets(ctx, dao.Order{UserID: userID}, []dao.Ticket{
			{Row: 5, Seat: 1, FlightID: firstFlight},
		})
		require.NoError(t, err)

		_, err = orderDAO.InsertWithTickets(ctx, dao.Order{UserID: userID}, []dao.Ticket{
			{Row: 5, Seat: 1, FlightID: secondFlight},
		})
		assert.NoError(t, err)
	})
}

func TestOrderDAO_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	orderDAO := dao.NewOrderDAO(testDB)

	flightID := seedFlight(t)
	owner := seedUser(t, "owner@example.com")
	stranger := seedUser(t, "stranger@example.com")

	order, err := orderDAO.InsertWithTickets(ctx, dao.Order{UserID: owner}, []dao.Ticket{
		{Row: 7, Seat: 1, FlightID: flightID},
	})
	require.NoError(t, err)

	t.Run("owner sees the order", func(t *testing.T) {
		found, err := orderDAO.FindByIDForUser(ctx, order.ID, owner)

		require.NoError(t, err)
		assert.Equal(t, order.ID, found.ID)
	})

	t.Run("someone else's order reads as not found", func(t *testing.T) {
		_, err := orderDAO.FindByIDForUser(ctx, order.ID, stranger)

		assert.ErrorIs(t, err, dao.ErrOrderNotFound)
	})

	t.Run("listing is scoped and newest first", func(t *testing.T) {
		second, err := orderDAO.InsertWithTickets(ctx, dao.Order{UserID: owner}, []dao.Ticket{
			{Row: 8, Seat: 1, FlightID: flightID},
		})
		require.NoError(t, err)

		orders, total, err := orderDAO.FindByUserID(ctx, owner, 0, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, orders, 2)
		assert.Equal(t, second.ID, orders[0].ID)

		strangerOrders, strangerTotal, err := orderDAO.FindByUserID(ctx, stranger, 0, 10)
		require.NoError(t, err)
		assert.Zero(t, strangerTotal)
		assert.Empty(t, strangerOrders)
	})
}
