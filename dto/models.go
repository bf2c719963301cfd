package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// ParsedFields is the output of one parsing pass over extracted document
// text. Every field is always present: an unmatched field keeps its zero
// value, absence is never an error.
type ParsedFields struct {
	Nationality    string
	Destination    string
	Purpose        string
	FullName       string
	PassportNumber string
	DateOfBirth    string
	Expiry         string
	Address        string
	MRZ            string
	BankBalanceHKD int64
	DepartureDate  *time.Time
	ArrivalDate    *time.Time
}

// Trip is the persisted trip record. Field naming is canonically snake_case
// end to end (column, JSON, query parameter).
type Trip struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	Nationality   string    `db:"nationality" json:"nationality"`
	Destination   string    `db:"destination" json:"destination"`
	Purpose       string    `db:"purpose" json:"purpose"`
	DepartureDate *string   `db:"departure_date" json:"departure_date"`
	ArrivalDate   *string   `db:"arrival_date" json:"arrival_date"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// RequiredDocs maps a row of the required_docs table: per-country document
// requirements for a visa application.
type RequiredDocs struct {
	ID                      int64   `db:"id"`
	DestinationCountry      string  `db:"destination_country"`
	Passport                bool    `db:"passport"`
	PassportPhoto           bool    `db:"passport_photo"`
	VisaApplicationForm     bool    `db:"visa_application_form"`
	BankStatement           bool    `db:"bank_statement"`
	EmploymentLetter        bool    `db:"employment_letter"`
	TravelItinerary         bool    `db:"travel_itinerary"`
	HotelBooking            bool    `db:"hotel_booking"`
	TravelInsurance         bool    `db:"travel_insurance"`
	InvitationLetter        bool    `db:"invitation_letter"`
	CriminalBackgroundCheck bool    `db:"criminal_background_check"`
	MedicalCertificate      bool    `db:"medical_certificate"`
	Others                  *string `db:"others"`
}

// ChecklistItem is one expanded document requirement.
type ChecklistItem struct {
	Field    string `json:"field"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// OtherRequirement is a free-form requirement from the others column.
type OtherRequirement struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// Requirements expands the boolean columns into checklist items, in the
// fixed column order, keeping only the ones set to true.
func (d *RequiredDocs) Requirements() []ChecklistItem {
	fields := []struct {
		field string
		set   bool
	}{
		{"passport", d.Passport},
		{"passport_photo", d.PassportPhoto},
		{"visa_application_form", d.VisaApplicationForm},
		{"bank_statement", d.BankStatement},
		{"employment_letter", d.EmploymentLetter},
		{"travel_itinerary", d.TravelItinerary},
		{"hotel_booking", d.HotelBooking},
		{"travel_insurance", d.TravelInsurance},
		{"invitation_letter", d.InvitationLetter},
		{"criminal_background_check", d.CriminalBackgroundCheck},
		{"medical_certificate", d.MedicalCertificate},
	}

	items := make([]ChecklistItem, 0, len(fields))
	for _, f := range fields {
		if !f.set {
			continue
		}
		items = append(items, ChecklistItem{
			Field:    f.field,
			Name:     readableFieldName(f.field),
			Required: true,
		})
	}
	return items
}

// ParseOthers decodes the others column. Valid JSON lists pass through, a
// single JSON object is wrapped in a list, and anything else is treated as
// one plain-text requirement.
func (d *RequiredDocs) ParseOthers() []OtherRequirement {
	if d.Others == nil || strings.TrimSpace(*d.Others) == "" {
		return []OtherRequirement{}
	}

	raw := *d.Others
	var list []OtherRequirement
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}

	var single OtherRequirement
	if err := json.Unmarshal([]byte(raw), &single); err == nil && single.Name != "" {
		return []OtherRequirement{single}
	}

	return []OtherRequirement{{Name: raw, Required: true}}
}

func readableFieldName(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// VisaRule is one row of the visa_rules table.
type VisaRule struct {
	ID             int64  `db:"id" json:"id"`
	Nationality    string `db:"nationality" json:"nationality"`
	Destination    string `db:"destination" json:"destination"`
	Purpose        string `db:"purpose" json:"purpose"`
	VisaType       string `db:"visa_type" json:"visa_type"`
	VisaRequired   bool   `db:"visa_required" json:"visa_required"`
	MaxStayDays    int    `db:"max_stay_days" json:"max_stay_days"`
	ProcessingDays int    `db:"processing_days" json:"processing_days"`
	Notes          string `db:"notes" json:"notes"`
}
