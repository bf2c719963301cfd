package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visamate/visa-helper-backend/dto"
)

func newMockDB(t *testing.T) (DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresDB{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func tripColumns() []string {
	return []string{
		"id", "user_id", "nationality", "destination", "purpose",
		"departure_date", "arrival_date", "created_at",
	}
}

func TestCreateTrip(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	t.Run("Success", func(t *testing.T) {
		departure := "2024-02-01"
		trip := &dto.Trip{
			UserID:        "user-1",
			Nationality:   "CANADA",
			Destination:   "JAPAN",
			Purpose:       "TOURISM",
			DepartureDate: &departure,
		}

		mock.ExpectQuery(`INSERT INTO trips`).
			WithArgs(
				sqlmock.AnyArg(), "user-1", "CANADA", "JAPAN", "TOURISM",
				&departure, nil,
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		err := repo.Create(trip)
		require.NoError(t, err)
		assert.NotEmpty(t, trip.ID)
		assert.False(t, trip.CreatedAt.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Keeps provided ID", func(t *testing.T) {
		trip := &dto.Trip{ID: "fixed-id", UserID: "user-1"}

		mock.ExpectQuery(`INSERT INTO trips`).
			WithArgs("fixed-id", "user-1", "", "", "", nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		err := repo.Create(trip)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", trip.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		trip := &dto.Trip{UserID: "user-1"}

		mock.ExpectQuery(`INSERT INTO trips`).
			WillReturnError(fmt.Errorf("database error"))

		err := repo.Create(trip)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create trip")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTripByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM trips\s+WHERE id`).
			WithArgs("trip-1").
			WillReturnRows(sqlmock.NewRows(tripColumns()).
				AddRow("trip-1", "user-1", "CANADA", "JAPAN", "TOURISM", "2024-02-01", nil, now))

		trip, err := repo.GetByID("trip-1")
		require.NoError(t, err)
		assert.Equal(t, "trip-1", trip.ID)
		assert.Equal(t, "user-1", trip.UserID)
		require.NotNil(t, trip.DepartureDate)
		assert.Equal(t, "2024-02-01", *trip.DepartureDate)
		assert.Nil(t, trip.ArrivalDate)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM trips\s+WHERE id`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(tripColumns()))

		trip, err := repo.GetByID("missing")
		assert.Error(t, err)
		assert.Nil(t, trip)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListTripsByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM trips\s+WHERE user_id`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(tripColumns()).
			AddRow("trip-2", "user-1", "JAPAN", "CANADA", "BUSINESS", nil, nil, now).
			AddRow("trip-1", "user-1", "CANADA", "JAPAN", "TOURISM", "2024-02-01", "2024-04-03", now))

	trips, err := repo.ListByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "trip-2", trips[0].ID)
	assert.Nil(t, trips[0].DepartureDate)
	require.NotNil(t, trips[1].ArrivalDate)
	assert.Equal(t, "2024-04-03", *trips[1].ArrivalDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllTrips(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM trips\s+ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows(tripColumns()))

	trips, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, trips)

	assert.NoError(t, mock.ExpectationsWereMet())
}
