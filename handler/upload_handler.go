package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/visamate/visa-helper-backend/dto"
)

// DocumentExtractor runs the upload-and-extract pipeline.
type DocumentExtractor interface {
	ExtractTripFromDocument(ctx context.Context, fileBytes []byte, contentType, userID string) (*dto.UploadResult, error)
}

// UploadHandler serves the document upload endpoint.
type UploadHandler struct {
	documents DocumentExtractor
	logger    *logrus.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(documents DocumentExtractor, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		documents: documents,
		logger:    logger,
	}
}

// UploadAndExtract handles POST /upload/:id
func (h *UploadHandler) UploadAndExtract(c *gin.Context) {
	userID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided. Please upload a PDF, JPG, or PNG file.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.documents.ExtractTripFromDocument(c.Request.Context(), fileBytes, contentType, userID)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"user_id":      userID,
			"content_type": contentType,
			"filename":     fileHeader.Filename,
		}).WithError(err).Warn("document extraction failed")
		h.sendError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, result)
}

// statusForError maps the pipeline error taxonomy to HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, dto.ErrMissingInput):
		return http.StatusBadRequest
	case errors.Is(err, dto.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, dto.ErrPDFDecode), errors.Is(err, dto.ErrImageDecode):
		return http.StatusBadRequest
	case errors.Is(err, dto.ErrNoTextExtracted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dto.ErrOCRUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, dto.ErrPersistence):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *UploadHandler) sendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: message,
		Code:    statusCode,
	})
}
