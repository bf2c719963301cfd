package dto

import "errors"

// Pipeline error taxonomy. Every one of these is terminal for the current
// request; nothing is retried internally. Callers match with errors.Is and
// map the kind to an HTTP status.
var (
	ErrMissingInput         = errors.New("no file provided")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPDFDecode            = errors.New("invalid PDF file")
	ErrImageDecode          = errors.New("invalid image file")
	ErrOCRUnavailable       = errors.New("OCR engine unavailable")
	ErrNoTextExtracted      = errors.New("no text could be extracted from the file")
	ErrPersistence          = errors.New("failed to save trip record")
)
