package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/visamate/visa-helper-backend/dto"
)

// TripRepository is the persistence contract for trip endpoints.
type TripRepository interface {
	Create(trip *dto.Trip) error
	GetByID(tripID string) (*dto.Trip, error)
	ListByUserID(userID string) ([]dto.Trip, error)
	List() ([]dto.Trip, error)
}

// TripHandler serves the trip CRUD endpoints.
type TripHandler struct {
	trips  TripRepository
	logger *logrus.Logger
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(trips TripRepository, logger *logrus.Logger) *TripHandler {
	return &TripHandler{
		trips:  trips,
		logger: logger,
	}
}

// ListTrips handles GET /trips, optionally filtered by user_id
func (h *TripHandler) ListTrips(c *gin.Context) {
	var (
		trips []dto.Trip
		err   error
	)

	if userID := c.Query("user_id"); userID != "" {
		trips, err = h.trips.ListByUserID(userID)
	} else {
		trips, err = h.trips.List()
	}
	if err != nil {
		h.logger.WithError(err).Error("failed to list trips")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "TRIPS_FAILED",
			Message: "failed to list trips",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips, "count": len(trips)})
}

// CreateTrip handles POST /trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "TRIPS_FAILED",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "TRIPS_FAILED",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	trip := req.ToTrip()
	if err := h.trips.Create(trip); err != nil {
		h.logger.WithError(err).Error("failed to create trip")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "TRIPS_FAILED",
			Message: "failed to create trip",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, trip)
}

// GetTrip handles GET /trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.trips.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "TRIP_NOT_FOUND",
				Message: "trip not found",
				Code:    http.StatusNotFound,
			})
			return
		}
		h.logger.WithError(err).Error("failed to get trip")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "TRIPS_FAILED",
			Message: "failed to get trip",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, trip)
}
