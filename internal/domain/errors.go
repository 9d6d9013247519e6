package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrUnknownCountry = errors.New("unknown country")
	ErrNoData         = errors.New("no data")
	ErrUpstream       = errors.New("upstream request failed")

	ErrEmptyMessage    = errors.New("message is required")
	ErrChatUnavailable = errors.New("chat provider unavailable")

	ErrInvalidBudget      = errors.New("budget must be low, medium, or high")
	ErrMissingDestination = errors.New("destination is required")

	ErrInvalidPrice = errors.New("pricePerNight must be non-negative")
)
