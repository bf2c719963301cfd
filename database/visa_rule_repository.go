package database

import (
	"fmt"

	"github.com/visamate/visa-helper-backend/dto"
)

// VisaRuleRepository handles database operations for the visa_rules table
type VisaRuleRepository struct {
	db DB
}

// NewVisaRuleRepository creates a new VisaRuleRepository
func NewVisaRuleRepository(db DB) *VisaRuleRepository {
	return &VisaRuleRepository{db: db}
}

// Filter retrieves rules matching the provided keys. Empty values are not
// filtered on, so all-empty returns the whole table.
func (r *VisaRuleRepository) Filter(nationality, destination, purpose string) ([]dto.VisaRule, error) {
	query := `
		SELECT id, nationality, destination, purpose, visa_type,
		       visa_required, max_stay_days, processing_days, notes
		FROM visa_rules
		WHERE 1=1
	`
	args := []interface{}{}

	if nationality != "" {
		args = append(args, nationality)
		query += fmt.Sprintf(" AND nationality = $%d", len(args))
	}
	if destination != "" {
		args = append(args, destination)
		query += fmt.Sprintf(" AND destination = $%d", len(args))
	}
	if purpose != "" {
		args = append(args, purpose)
		query += fmt.Sprintf(" AND purpose = $%d", len(args))
	}

	query += " ORDER BY id"

	rules := []dto.VisaRule{}
	if err := r.db.Select(&rules, query, args...); err != nil {
		return nil, fmt.Errorf("failed to filter visa rules: %w", err)
	}
	return rules, nil
}
