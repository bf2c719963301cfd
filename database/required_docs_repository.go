package database

import (
	"strings"

	"github.com/visamate/visa-helper-backend/dto"
)

// RequiredDocsRepository handles database operations for the required_docs table
type RequiredDocsRepository struct {
	db DB
}

// NewRequiredDocsRepository creates a new RequiredDocsRepository
func NewRequiredDocsRepository(db DB) *RequiredDocsRepository {
	return &RequiredDocsRepository{db: db}
}

// GetByCountry retrieves the document requirements for a destination
// country code. Country codes are stored upper-cased; sql.ErrNoRows is
// passed through so the caller can map it to a 404.
func (r *RequiredDocsRepository) GetByCountry(countryCode string) (*dto.RequiredDocs, error) {
	query := `
		SELECT id, destination_country, passport, passport_photo,
		       visa_application_form, bank_statement, employment_letter,
		       travel_itinerary, hotel_booking, travel_insurance,
		       invitation_letter, criminal_background_check,
		       medical_certificate, others
		FROM required_docs
		WHERE destination_country = $1
	`

	var docs dto.RequiredDocs
	if err := r.db.Get(&docs, query, strings.ToUpper(countryCode)); err != nil {
		return nil, err
	}
	return &docs, nil
}
