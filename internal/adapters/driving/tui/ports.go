// Package tui provides an interactive terminal user interface for shelfaware.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/jgold-code/shelfaware/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Recommend turns free-text preferences into book recommendations.
	Recommend driving.RecommendationService

	// ReadingList manages the two persisted reading lists.
	ReadingList driving.ReadingListService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	recommend driving.RecommendationService,
	readingList driving.ReadingListService,
) *Ports {
	return &Ports{
		Recommend:   recommend,
		ReadingList: readingList,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Recommend == nil {
		return ErrMissingRecommendationService
	}
	if p.ReadingList == nil {
		return ErrMissingReadingListService
	}
	return nil
}
