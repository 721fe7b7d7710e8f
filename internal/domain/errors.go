package domain

import "errors"

// ErrParse is returned when a feed document cannot be decoded into a
// Collection: malformed XML or a trip whose start date cannot be read.
// Handlers should map this to HTTP 422.
var ErrParse = errors.New("parse error")

// ErrInvalidDisplayMode is returned by the strict rendering path when the
// requested display mode is neither "short" nor "long".
var ErrInvalidDisplayMode = errors.New("invalid display mode")

// ErrValidation is returned by service functions when request parameters
// fail validation (e.g. a negative placeholder limit).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
