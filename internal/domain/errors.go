package domain

import "errors"

// Sentinel errors for domain-level failure classification.
// Services wrap these so the HTTP boundary can map failures to status codes
// without leaking infrastructure details.
var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
	ErrStore          = errors.New("store failure")
)
