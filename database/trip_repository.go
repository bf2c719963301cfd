package database

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/visamate/visa-helper-backend/dto"
)

// TripRepository handles database operations for the trips table
type TripRepository struct {
	db DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository(db DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a new trip. This is the single mutation point of the
// extraction pipeline: nothing is committed before this call.
func (r *TripRepository) Create(trip *dto.Trip) error {
	query := `
		INSERT INTO trips (
			id, user_id, nationality, destination, purpose,
			departure_date, arrival_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		trip.ID, trip.UserID, trip.Nationality, trip.Destination, trip.Purpose,
		trip.DepartureDate, trip.ArrivalDate,
	).Scan(&trip.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

// GetByID retrieves a trip by ID
func (r *TripRepository) GetByID(tripID string) (*dto.Trip, error) {
	query := `
		SELECT id, user_id, nationality, destination, purpose,
		       to_char(departure_date, 'YYYY-MM-DD') AS departure_date,
		       to_char(arrival_date, 'YYYY-MM-DD') AS arrival_date,
		       created_at
		FROM trips
		WHERE id = $1
	`

	var trip dto.Trip
	if err := r.db.Get(&trip, query, tripID); err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListByUserID retrieves all trips for a user, newest first
func (r *TripRepository) ListByUserID(userID string) ([]dto.Trip, error) {
	query := `
		SELECT id, user_id, nationality, destination, purpose,
		       to_char(departure_date, 'YYYY-MM-DD') AS departure_date,
		       to_char(arrival_date, 'YYYY-MM-DD') AS arrival_date,
		       created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	trips := []dto.Trip{}
	if err := r.db.Select(&trips, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// List retrieves all trips, newest first
func (r *TripRepository) List() ([]dto.Trip, error) {
	query := `
		SELECT id, user_id, nationality, destination, purpose,
		       to_char(departure_date, 'YYYY-MM-DD') AS departure_date,
		       to_char(arrival_date, 'YYYY-MM-DD') AS arrival_date,
		       created_at
		FROM trips
		ORDER BY created_at DESC
	`

	trips := []dto.Trip{}
	if err := r.db.Select(&trips, query); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}
