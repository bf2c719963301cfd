package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visamate/visa-helper-backend/dto"
)

type fakeTripRepo struct {
	trips       []dto.Trip
	trip        *dto.Trip
	err         error
	created     []*dto.Trip
	listedUser  string
	listedAll   bool
	requestedID string
}

func (f *fakeTripRepo) Create(trip *dto.Trip) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, trip)
	return nil
}

func (f *fakeTripRepo) GetByID(tripID string) (*dto.Trip, error) {
	f.requestedID = tripID
	if f.err != nil {
		return nil, f.err
	}
	return f.trip, nil
}

func (f *fakeTripRepo) ListByUserID(userID string) ([]dto.Trip, error) {
	f.listedUser = userID
	return f.trips, f.err
}

func (f *fakeTripRepo) List() ([]dto.Trip, error) {
	f.listedAll = true
	return f.trips, f.err
}

func tripRouter(repo *fakeTripRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTripHandler(repo, testLogger())
	router.GET("/api/v1/trips", h.ListTrips)
	router.POST("/api/v1/trips", h.CreateTrip)
	router.GET("/api/v1/trips/:id", h.GetTrip)
	return router
}

func TestListTrips(t *testing.T) {
	t.Run("Filtered by user_id", func(t *testing.T) {
		repo := &fakeTripRepo{trips: []dto.Trip{{ID: "trip-1", UserID: "user-1"}}}
		router := tripRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/trips?user_id=user-1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", repo.listedUser)
		assert.False(t, repo.listedAll)

		var resp struct {
			Trips []dto.Trip `json:"trips"`
			Count int        `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Trips, 1)
		assert.Equal(t, "trip-1", resp.Trips[0].ID)
	})

	t.Run("Unfiltered lists everything", func(t *testing.T) {
		repo := &fakeTripRepo{}
		router := tripRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, repo.listedAll)
		assert.Empty(t, repo.listedUser)
	})

	t.Run("Store error", func(t *testing.T) {
		router := tripRouter(&fakeTripRepo{err: fmt.Errorf("database error")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCreateTripEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &fakeTripRepo{}
		router := tripRouter(repo)

		body := `{"user_id":"user-1","nationality":"CANADA","destination":"JAPAN","departure_date":"2024-02-01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "user-1", repo.created[0].UserID)
		require.NotNil(t, repo.created[0].DepartureDate)
		assert.Equal(t, "2024-02-01", *repo.created[0].DepartureDate)
	})

	t.Run("Missing user_id", func(t *testing.T) {
		repo := &fakeTripRepo{}
		router := tripRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", bytes.NewBufferString(`{"destination":"JAPAN"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.created)
	})

	t.Run("Bad date format", func(t *testing.T) {
		repo := &fakeTripRepo{}
		router := tripRouter(repo)

		body := `{"user_id":"user-1","departure_date":"01/02/2024"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
		assert.Empty(t, repo.created)
	})

	t.Run("Store error", func(t *testing.T) {
		router := tripRouter(&fakeTripRepo{err: fmt.Errorf("insert failed")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetTripEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &fakeTripRepo{trip: &dto.Trip{ID: "trip-1", UserID: "user-1"}}
		router := tripRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/trip-1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "trip-1", repo.requestedID)

		var trip dto.Trip
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trip))
		assert.Equal(t, "user-1", trip.UserID)
	})

	t.Run("Not found", func(t *testing.T) {
		router := tripRouter(&fakeTripRepo{err: sql.ErrNoRows})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "TRIP_NOT_FOUND")
	})
}
