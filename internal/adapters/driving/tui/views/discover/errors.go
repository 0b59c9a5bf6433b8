package discover

import "errors"

// ErrNoRecommendationService is returned when no recommendation service is wired.
var ErrNoRecommendationService = errors.New("discover: no recommendation service configured")
