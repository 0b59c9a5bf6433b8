package tui

import "errors"

// ErrMissingRecommendationService is returned when the recommendation service is not provided.
var ErrMissingRecommendationService = errors.New("tui: recommendation service is required")

// ErrMissingReadingListService is returned when the reading list service is not provided.
var ErrMissingReadingListService = errors.New("tui: reading list service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
