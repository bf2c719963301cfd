package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/visamate/visa-helper-backend/dto"
)

// RequiredDocsStore looks up per-country document requirements.
type RequiredDocsStore interface {
	GetByCountry(countryCode string) (*dto.RequiredDocs, error)
}

// ChecklistHandler serves the checklist lookup endpoint.
type ChecklistHandler struct {
	docs   RequiredDocsStore
	logger *logrus.Logger
}

// NewChecklistHandler creates a new ChecklistHandler
func NewChecklistHandler(docs RequiredDocsStore, logger *logrus.Logger) *ChecklistHandler {
	return &ChecklistHandler{
		docs:   docs,
		logger: logger,
	}
}

// GetChecklist handles GET /application/:id/checklist
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	applicationID := c.Param("id")

	country := c.Query("destination_country")
	if country == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "CHECKLIST_FAILED",
			Message: "destination_country parameter is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	docs, err := h.docs.GetByCountry(country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "CHECKLIST_NOT_FOUND",
				Message: fmt.Sprintf("No requirements found for country: %s", country),
				Code:    http.StatusNotFound,
			})
			return
		}
		h.logger.WithError(err).Error("checklist lookup failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "CHECKLIST_FAILED",
			Message: "failed to look up checklist",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	required := docs.Requirements()
	others := docs.ParseOthers()

	c.JSON(http.StatusOK, dto.ChecklistResponse{
		ApplicationID:      applicationID,
		DestinationCountry: strings.ToUpper(country),
		RequiredDocuments:  required,
		Others:             others,
		TotalRequirements:  len(required) + len(others),
	})
}
