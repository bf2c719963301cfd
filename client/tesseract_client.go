package client

import (
	"fmt"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient wraps the Tesseract OCR engine for text extraction from
// image files.
type TesseractClient struct {
	tessdataPrefix string
	language       string
}

// NewTesseractClient creates a new Tesseract client
func NewTesseractClient(tessdataPrefix, language string) *TesseractClient {
	return &TesseractClient{
		tessdataPrefix: tessdataPrefix,
		language:       language,
	}
}

// Available reports whether the Tesseract engine and its language data are
// reachable. Extraction is never attempted against an unavailable engine;
// callers must fail the request instead.
func (tc *TesseractClient) Available() bool {
	langs, err := gosseract.GetAvailableLanguages()
	return err == nil && len(langs) > 0
}

// ExtractText runs OCR over raw image bytes. The bytes are staged in a
// temporary file because Tesseract reads from disk.
func (tc *TesseractClient) ExtractText(data []byte, ext string) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tempFile.Close()

	return tc.extractText(tempFile.Name())
}

func (tc *TesseractClient) extractText(filePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.tessdataPrefix)

	if err := client.SetLanguage(tc.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}
