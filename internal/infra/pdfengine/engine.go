// Package pdfengine adapts third-party PDF libraries to domain.PDFEngine.
package pdfengine

import (
	"fmt"
	"strings"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"
)

// Engine names accepted by NewEngine and the PDF_ENGINE setting.
const (
	EngineFitz  = "fitz"
	EnginePlain = "ledongthuc"
)

// NewEngine returns the engine registered under name. An empty name selects fitz.
func NewEngine(name string) (domain.PDFEngine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineFitz, "mupdf":
		return NewFitzEngine(), nil
	case EnginePlain, "plain", "go":
		return NewPlainEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEngine, name)
	}
}

func checkPage(pageNumber, numPages int) error {
	if pageNumber < 1 || pageNumber > numPages {
		return fmt.Errorf("%w: %d (document has %d pages)", domain.ErrPageOutOfRange, pageNumber, numPages)
	}
	return nil
}
