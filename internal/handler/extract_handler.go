package handler

import (
	"errors"
	"net/http"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"
	apperrors "github.com/Thomaslgrn/pdftotexte/pkg/errors"
)

// FileField is the multipart field carrying the uploaded PDF
const FileField = "file"

const (
	msgFileRequired    = "Le champ 'file' est requis"
	msgExtractionError = "Erreur lors de l'extraction du texte"
)

// ExtractHandler handles PDF text extraction requests
type ExtractHandler struct {
	extractor domain.TextExtractor
	maxMemory int64
	logger    domain.Logger
}

// NewExtractHandler creates a new extract handler. maxMemory bounds how much
// of the multipart body is held in memory before spilling to temp files.
func NewExtractHandler(extractor domain.TextExtractor, maxMemory int64, logger domain.Logger) *ExtractHandler {
	return &ExtractHandler{
		extractor: extractor,
		maxMemory: maxMemory,
		logger:    logger,
	}
}

// Extract handles POST /extract
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		// Only a body that is not multipart at all means the file is missing;
		// anything else failed while reading the upload.
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			h.logger.Warn("Invalid multipart body", "error", err)
			writeAppError(w, apperrors.NewMissingInputError(msgFileRequired, err))
			return
		}
		h.logger.Error("Failed to read multipart body", err)
		writeAppError(w, apperrors.NewProcessingError(msgExtractionError, err))
		return
	}
	// Spilled parts live in temp files; nothing may outlive the request.
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("Failed to remove multipart temp files", "error", err)
		}
	}()

	file, header, err := r.FormFile(FileField)
	if err != nil {
		h.logger.Warn("Upload without file field", "error", err)
		writeAppError(w, apperrors.NewMissingInputError(msgFileRequired, err))
		return
	}
	defer file.Close()

	requestID, _ := GetRequestIDFromContext(r)
	h.logger.Debug("Extract request received",
		"request_id", requestID,
		"filename", header.Filename,
		"content_type", header.Header.Get("Content-Type"),
	)

	result, err := h.extractor.Extract(r.Context(), &domain.UploadedFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
