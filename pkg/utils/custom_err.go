package utils

import "errors"

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrOptionNotFound      = errors.New("trip option not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
	ErrClientNotConfigured = errors.New("text generation client not configured")
)
