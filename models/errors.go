package models

import "github.com/pkg/errors"

// Sentinel domain errors. Handlers wrap them with context, controllers
// map them to HTTP statuses with errors.Is.
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)
