package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExtractedData is the wire form of ParsedFields. Dates are ISO-8601 date
// strings, empty when unresolved.
type ExtractedData struct {
	Nationality    string `json:"nationality"`
	Destination    string `json:"destination"`
	Purpose        string `json:"purpose"`
	DepartureDate  string `json:"departure_date"`
	ArrivalDate    string `json:"arrival_date"`
	FullName       string `json:"full_name"`
	PassportNumber string `json:"passport_number"`
	DateOfBirth    string `json:"date_of_birth"`
	Expiry         string `json:"expiry"`
	Address        string `json:"address"`
	MRZ            string `json:"mrz"`
	BankBalanceHKD int64  `json:"bank_balance_hkd"`
}

// UploadResult is the response for a successful upload-and-extract call.
type UploadResult struct {
	Success           bool          `json:"success"`
	Message           string        `json:"message"`
	ExtractedData     ExtractedData `json:"extracted_data"`
	DocumentReference string        `json:"document_reference,omitempty"`
	TripID            string        `json:"trip_id"`
}

// ChecklistResponse is the response for the checklist lookup endpoint.
type ChecklistResponse struct {
	ApplicationID      string             `json:"application_id"`
	DestinationCountry string             `json:"destination_country"`
	RequiredDocuments  []ChecklistItem    `json:"required_documents"`
	Others             []OtherRequirement `json:"others"`
	TotalRequirements  int                `json:"total_requirements"`
}

// RulesResponse is the response for the rules lookup endpoint.
type RulesResponse struct {
	Rules []VisaRule `json:"rules"`
	Count int        `json:"count"`
}
