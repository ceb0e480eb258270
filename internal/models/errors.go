// internal/models/errors.go
package models

import "errors"

var (
	// Client errors
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrProductNotFound   = errors.New("product not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidAction     = errors.New("invalid action")
	ErrAlreadyVoted      = errors.New("you already voted on this product")
	ErrAlreadyReported   = errors.New("you already reported this product")
	ErrNotModified       = errors.New("document not modified")

	// Server errors
	ErrStoreUnavailable = errors.New("store unavailable")
)
