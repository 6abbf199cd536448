package entity

import "errors"

var (
	// Source errors
	ErrSourceNotFound = errors.New("source image not found")
	ErrDecodeFailure  = errors.New("failed to decode image")

	// Export errors
	ErrResampleFailure = errors.New("failed to resample image")
	ErrSaveFailure     = errors.New("failed to save image")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
