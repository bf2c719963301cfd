package dto

import (
	"errors"
	"time"
)

// CreateTripRequest is the body for POST /trips.
type CreateTripRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	Nationality   string `json:"nationality"`
	Destination   string `json:"destination"`
	Purpose       string `json:"purpose"`
	DepartureDate string `json:"departure_date"`
	ArrivalDate   string `json:"arrival_date"`
}

// Validate checks the date fields against the ISO-8601 date form.
func (r *CreateTripRequest) Validate() error {
	for _, d := range []string{r.DepartureDate, r.ArrivalDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return errors.New("dates must be in YYYY-MM-DD format")
		}
	}
	return nil
}

// ToTrip builds a Trip record from the request.
func (r *CreateTripRequest) ToTrip() *Trip {
	trip := &Trip{
		UserID:      r.UserID,
		Nationality: r.Nationality,
		Destination: r.Destination,
		Purpose:     r.Purpose,
	}
	if r.DepartureDate != "" {
		d := r.DepartureDate
		trip.DepartureDate = &d
	}
	if r.ArrivalDate != "" {
		a := r.ArrivalDate
		trip.ArrivalDate = &a
	}
	return trip
}
