package domain

import "context"

// PDFEngine opens raw PDF bytes with a concrete parsing library.
type PDFEngine interface {
	Name() string
	Open(data []byte) (PDFDocument, error)
}

// PDFDocument is an opened PDF. Pages are 1-indexed.
// Callers must Close the document once done with it.
type PDFDocument interface {
	NumPage() int
	PageText(pageNumber int) (string, error)
	Close() error
}

// TextExtractor defines the extraction use case behind POST /extract
type TextExtractor interface {
	Extract(ctx context.Context, file *UploadedFile) (*ExtractionResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetHost() string
	GetServerPort() string
	GetLogLevel() string
	GetPDFEngine() string
	GetMultipartMaxMemory() int64
}
