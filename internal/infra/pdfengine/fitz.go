package pdfengine

import (
	"fmt"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzEngine extracts text with MuPDF through go-fitz.
type FitzEngine struct{}

// NewFitzEngine creates a new MuPDF backed engine
func NewFitzEngine() *FitzEngine {
	return &FitzEngine{}
}

// Name returns the engine identifier
func (e *FitzEngine) Name() string {
	return EngineFitz
}

// Open parses the PDF from memory
func (e *FitzEngine) Open(data []byte) (domain.PDFDocument, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageText(pageNumber int) (string, error) {
	if err := checkPage(pageNumber, d.doc.NumPage()); err != nil {
		return "", err
	}
	// go-fitz pages are 0-indexed
	text, err := d.doc.Text(pageNumber - 1)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", pageNumber, err)
	}
	return text, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
