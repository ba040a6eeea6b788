package domain

import "errors"

// Domain errors
var (
	ErrInvalidContentType = errors.New("declared content type is not application/pdf")
	ErrUnknownEngine      = errors.New("unknown pdf engine")
	ErrPageOutOfRange     = errors.New("page number out of range")
)
