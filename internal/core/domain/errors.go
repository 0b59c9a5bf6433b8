package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested book does not exist in a list.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Recommendation errors.

	// ErrNotConfigured indicates the completion API key is missing.
	// No network call is attempted; the user must set the key first.
	ErrNotConfigured = errors.New("completion API key is not configured")

	// ErrUpstream indicates the completion endpoint failed or returned
	// a non-success status.
	ErrUpstream = errors.New("completion request failed")

	// ErrMalformedResponse indicates the completion output could not be
	// parsed as the expected JSON array.
	ErrMalformedResponse = errors.New("failed to parse recommendation response")

	// ErrNoRecommendations indicates the completion returned an empty
	// array. Not a transport failure; the user should try different
	// preferences.
	ErrNoRecommendations = errors.New("no recommendations found")

	// ErrRateLimited indicates an external API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
