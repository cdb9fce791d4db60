package domain

import "errors"

// Error kinds shared by the model, the layout codec and the layout stores.
// Callers match them with errors.Is; wrapped errors carry the detail.
var (
	ErrInvalidConfig     = errors.New("invalid arena config")
	ErrInvalidShape      = errors.New("invalid shape")
	ErrMalformedDocument = errors.New("malformed layout document")
	ErrIOFailure         = errors.New("layout io failure")
	ErrLayoutNotFound    = errors.New("layout not found")
	ErrInvalidLayoutName = errors.New("invalid layout name")
)
