package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/visamate/visa-helper-backend/dto"
)

// VisaRuleStore filters visa rules by the provided keys.
type VisaRuleStore interface {
	Filter(nationality, destination, purpose string) ([]dto.VisaRule, error)
}

// RulesHandler serves the rules lookup endpoint.
type RulesHandler struct {
	rules  VisaRuleStore
	logger *logrus.Logger
}

// NewRulesHandler creates a new RulesHandler
func NewRulesHandler(rules VisaRuleStore, logger *logrus.Logger) *RulesHandler {
	return &RulesHandler{
		rules:  rules,
		logger: logger,
	}
}

// ListRules handles GET /rules
func (h *RulesHandler) ListRules(c *gin.Context) {
	rules, err := h.rules.Filter(
		c.Query("nationality"),
		c.Query("destination"),
		c.Query("purpose"),
	)
	if err != nil {
		h.logger.WithError(err).Error("failed to filter visa rules")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "RULES_FAILED",
			Message: "failed to look up visa rules",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, dto.RulesResponse{Rules: rules, Count: len(rules)})
}
