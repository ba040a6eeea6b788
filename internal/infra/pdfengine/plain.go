package pdfengine

import (
	"bytes"
	"fmt"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"

	lpdf "github.com/ledongthuc/pdf"
)

// PlainEngine extracts text with the pure Go ledongthuc/pdf reader.
// It needs no C toolchain and is handy for CGO_ENABLED=0 builds.
type PlainEngine struct{}

// NewPlainEngine creates a new pure Go engine
func NewPlainEngine() *PlainEngine {
	return &PlainEngine{}
}

// Name returns the engine identifier
func (e *PlainEngine) Name() string {
	return EnginePlain
}

// Open parses the PDF from memory. The reader panics on some malformed
// inputs, so panics are turned into errors here.
func (e *PlainEngine) Open(data []byte) (doc domain.PDFDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("failed to open PDF: %v", r)
		}
	}()

	reader, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &plainDocument{
		reader:   reader,
		numPages: reader.NumPage(),
	}, nil
}

type plainDocument struct {
	reader   *lpdf.Reader
	numPages int
}

func (d *plainDocument) NumPage() int {
	return d.numPages
}

func (d *plainDocument) PageText(pageNumber int) (text string, err error) {
	if err := checkPage(pageNumber, d.numPages); err != nil {
		return "", err
	}
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to extract text from page %d: %v", pageNumber, r)
		}
	}()

	page := d.reader.Page(pageNumber)
	if page.V.IsNull() {
		return "", nil
	}
	// Font names are scoped to the page resources, /F1 on one page may be
	// a different font on the next.
	fonts := make(map[string]*lpdf.Font)
	for _, name := range page.Fonts() {
		f := page.Font(name)
		fonts[name] = &f
	}
	text, err = page.GetPlainText(fonts)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", pageNumber, err)
	}
	return text, nil
}

// Close is a no-op, the reader only holds the in-memory buffer.
func (d *plainDocument) Close() error {
	return nil
}
