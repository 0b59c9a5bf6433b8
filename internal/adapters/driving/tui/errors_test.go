package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingRecommendationService,
		ErrMissingReadingListService,
		ErrInvalidPorts,
	}

	// Ensure all errors are unique
	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingRecommendationService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingRecommendationService.Error(), "recommendation service")
}

func TestErrMissingReadingListService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingReadingListService.Error(), "reading list service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
