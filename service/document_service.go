package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	// Registers JPEG and PNG decoders for the raster gate.
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/visamate/visa-helper-backend/dto"
	"github.com/visamate/visa-helper-backend/utils"
)

// OCRClient is the OCR engine contract. Unavailability is a hard failure:
// extraction results are never substituted with fabricated text.
type OCRClient interface {
	Available() bool
	ExtractText(data []byte, ext string) (string, error)
}

// TripStore persists trip records.
type TripStore interface {
	Create(trip *dto.Trip) error
}

type extractorKind int

const (
	extractorPDF extractorKind = iota
	extractorImage
)

// DocumentService runs the upload pipeline: classify the blob, extract raw
// text, parse fields, materialize a trip record and persist it. All
// collaborators are injected; the service holds no ambient state.
type DocumentService struct {
	ocrClient    OCRClient
	pdfProcessor PDFProcessor
	qrDecoder    QRDecoder
	trips        TripStore
	logger       *logrus.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	ocrClient OCRClient,
	pdfProcessor PDFProcessor,
	qrDecoder QRDecoder,
	trips TripStore,
	logger *logrus.Logger,
) *DocumentService {
	return &DocumentService{
		ocrClient:    ocrClient,
		pdfProcessor: pdfProcessor,
		qrDecoder:    qrDecoder,
		trips:        trips,
		logger:       logger,
	}
}

// classifyContentType routes a declared MIME type to an extractor.
func classifyContentType(contentType string) (extractorKind, error) {
	switch contentType {
	case "application/pdf":
		return extractorPDF, nil
	case "image/jpeg", "image/jpg", "image/png":
		return extractorImage, nil
	default:
		return 0, fmt.Errorf("%w: %s", dto.ErrUnsupportedMediaType, contentType)
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}

// ExtractTripFromDocument classifies the uploaded blob, extracts its text,
// parses trip fields and persists a trip record for the given user. The
// single insert at the end is the only mutation point; any failure before
// it leaves no partial state behind.
func (s *DocumentService) ExtractTripFromDocument(ctx context.Context, fileBytes []byte, contentType, userID string) (*dto.UploadResult, error) {
	if len(fileBytes) == 0 {
		return nil, dto.ErrMissingInput
	}

	kind, err := classifyContentType(contentType)
	if err != nil {
		return nil, err
	}

	var text string
	var documentReference string

	switch kind {
	case extractorPDF:
		text, err = s.pdfProcessor.ExtractText(fileBytes)
		if err != nil {
			return nil, err
		}
	case extractorImage:
		img, _, decErr := image.Decode(bytes.NewReader(fileBytes))
		if decErr != nil {
			return nil, fmt.Errorf("%w: %v", dto.ErrImageDecode, decErr)
		}
		if !s.ocrClient.Available() {
			return nil, dto.ErrOCRUnavailable
		}
		text, err = s.ocrClient.ExtractText(fileBytes, extensionFor(contentType))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", dto.ErrOCRUnavailable, err)
		}
		// The QR reference is a best-effort hint; most documents have none.
		if ref, qrErr := s.qrDecoder.Decode(img); qrErr == nil {
			documentReference = ref
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, dto.ErrNoTextExtracted
	}

	fields := utils.ParseDocumentText(text)
	trip := materializeTrip(fields, userID)

	if err := s.trips.Create(trip); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrPersistence, err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":     userID,
		"trip_id":     trip.ID,
		"nationality": fields.Nationality,
		"destination": fields.Destination,
	}).Info("document processed and trip saved")

	return &dto.UploadResult{
		Success:           true,
		Message:           "Document processed successfully and trip data saved.",
		ExtractedData:     extractedDataView(fields),
		DocumentReference: documentReference,
		TripID:            trip.ID,
	}, nil
}

// materializeTrip maps parsed fields onto a persistence-ready trip record
// with a fresh identifier. Dates serialize to ISO-8601 or stay null.
func materializeTrip(fields *dto.ParsedFields, userID string) *dto.Trip {
	trip := &dto.Trip{
		ID:          uuid.New().String(),
		UserID:      userID,
		Nationality: fields.Nationality,
		Destination: fields.Destination,
		Purpose:     fields.Purpose,
	}
	if fields.DepartureDate != nil {
		d := fields.DepartureDate.Format(time.DateOnly)
		trip.DepartureDate = &d
	}
	if fields.ArrivalDate != nil {
		a := fields.ArrivalDate.Format(time.DateOnly)
		trip.ArrivalDate = &a
	}
	return trip
}

func extractedDataView(fields *dto.ParsedFields) dto.ExtractedData {
	data := dto.ExtractedData{
		Nationality:    fields.Nationality,
		Destination:    fields.Destination,
		Purpose:        fields.Purpose,
		FullName:       fields.FullName,
		PassportNumber: fields.PassportNumber,
		DateOfBirth:    fields.DateOfBirth,
		Expiry:         fields.Expiry,
		Address:        fields.Address,
		MRZ:            fields.MRZ,
		BankBalanceHKD: fields.BankBalanceHKD,
	}
	if fields.DepartureDate != nil {
		data.DepartureDate = fields.DepartureDate.Format(time.DateOnly)
	}
	if fields.ArrivalDate != nil {
		data.ArrivalDate = fields.ArrivalDate.Format(time.DateOnly)
	}
	return data
}
