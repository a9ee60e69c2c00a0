package domain

import "errors"

// Failure classes surfaced by the sync and auth flows. Callers only ever see a status
// code and a fixed message; these sentinels drive that mapping.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAuthFlow         = errors.New("auth flow failure")
	ErrUpstream         = errors.New("upstream failure")
	ErrPersistence      = errors.New("persistence failure")

	ErrInvalidState = errors.New("oauth state mismatch")
	ErrInvalidHMAC  = errors.New("invalid oauth callback signature")
	ErrInvalidShop  = errors.New("invalid shop domain")
)
