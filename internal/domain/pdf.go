package domain

import "io"

// PDFMimeType is the only content type accepted by the extract endpoint.
const PDFMimeType = "application/pdf"

// PageMarkerFormat delimits each page in the concatenated text
const PageMarkerFormat = "--- Page %d ---"

// FallbackText is returned as text when a readable PDF has no text layer.
const FallbackText = "Aucun texte n'a pu être extrait de ce PDF. Le fichier pourrait être une image ou un document scanné."

const (
	ServiceName = "PDF Text Extractor API"
	RootMessage = "PDF Text Extractor API is running!"
)

// UploadedFile represents a file received in a single extract request.
// It is owned by the request and discarded once the response is written.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ExtractionResult is the response body of a successful extraction
type ExtractionResult struct {
	Text           string `json:"text"`
	Filename       string `json:"filename,omitempty"`
	PagesProcessed int    `json:"pages_processed"`
}

// RootResponse is the body of GET /
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
