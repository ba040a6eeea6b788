package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"
	apperrors "github.com/Thomaslgrn/pdftotexte/pkg/errors"

	"github.com/dustin/go-humanize"
)

const (
	msgNotPDF          = "Le fichier doit être au format PDF"
	msgExtractionError = "Erreur lors de l'extraction du texte"
)

// ExtractionService turns an uploaded PDF into page-delimited plain text.
// It holds no per-request state and is safe for concurrent use.
type ExtractionService struct {
	engine domain.PDFEngine
	logger domain.Logger
}

// NewExtractionService creates a new extraction service
func NewExtractionService(engine domain.PDFEngine, logger domain.Logger) *ExtractionService {
	return &ExtractionService{
		engine: engine,
		logger: logger,
	}
}

// Extract validates the declared content type, buffers the upload and folds
// the text of every page into a single string.
//
// The content type is trusted as declared; the payload is not sniffed, and
// it is not read at all when the declaration is wrong.
func (s *ExtractionService) Extract(ctx context.Context, file *domain.UploadedFile) (*domain.ExtractionResult, error) {
	if file.ContentType != domain.PDFMimeType {
		s.logger.Warn("Rejected upload with non-PDF content type",
			"filename", file.Filename,
			"content_type", file.ContentType,
		)
		return nil, apperrors.NewValidationError(msgNotPDF,
			fmt.Errorf("%w: %q", domain.ErrInvalidContentType, file.ContentType))
	}

	start := time.Now()

	data, err := io.ReadAll(file.Reader)
	if err != nil {
		return nil, s.processingError(file, fmt.Errorf("failed to read upload: %w", err))
	}

	text, pageCount, err := s.extractPages(ctx, data)
	if err != nil {
		return nil, s.processingError(file, err)
	}

	s.logger.Info("PDF text extracted",
		"filename", file.Filename,
		"size", humanize.Bytes(uint64(len(data))),
		"pages", pageCount,
		"chars", len(text),
		"engine", s.engine.Name(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if text == "" {
		return &domain.ExtractionResult{
			Text:           domain.FallbackText,
			PagesProcessed: pageCount,
		}, nil
	}

	return &domain.ExtractionResult{
		Text:           text,
		Filename:       file.Filename,
		PagesProcessed: pageCount,
	}, nil
}

// extractPages opens the document and returns the trimmed, marker-delimited
// text along with the total page count.
func (s *ExtractionService) extractPages(ctx context.Context, data []byte) (string, int, error) {
	doc, err := s.engine.Open(data)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			s.logger.Warn("Failed to close PDF document", "error", cerr)
		}
	}()

	numPages := doc.NumPage()
	var sb strings.Builder

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", 0, fmt.Errorf("extraction cancelled at page %d: %w", pageNum, err)
		}

		s.logger.Debug("PDF processing page", "page", pageNum, "total", numPages)
		pageText, err := doc.PageText(pageNum)
		if err != nil {
			return "", 0, err
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}

		sb.WriteString("\n")
		fmt.Fprintf(&sb, domain.PageMarkerFormat, pageNum)
		sb.WriteString("\n")
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), numPages, nil
}

func (s *ExtractionService) processingError(file *domain.UploadedFile, cause error) error {
	s.logger.Error("PDF text extraction failed", cause,
		"filename", file.Filename,
		"engine", s.engine.Name(),
	)
	return apperrors.NewProcessingError(msgExtractionError, cause)
}

var _ domain.TextExtractor = (*ExtractionService)(nil)
