package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/visamate/visa-helper-backend/dto"
)

// PDFProcessor extracts the text layer of a PDF document.
type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
}

type pdfProcessor struct{}

// NewPDFProcessor creates a PDFProcessor backed by pdfcpu and ledongthuc/pdf.
func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText concatenates the text layer of every page, one line break
// between pages. Pages without extractable text contribute nothing; no OCR
// fallback is attempted for scanned pages.
func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	// Validate the container first; ledongthuc/pdf is lenient with some
	// malformed streams that pdfcpu rejects.
	conf := model.NewDefaultConfiguration()
	if _, err := api.PageCount(bytes.NewReader(pdfData), conf); err != nil {
		return "", fmt.Errorf("%w: %v", dto.ErrPDFDecode, err)
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", dto.ErrPDFDecode, err)
	}

	var textBuilder bytes.Buffer
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}
