// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/jgold-code/shelfaware/internal/core/domain"
)

// RecommendationsLoaded carries fetched recommendations back to the model.
type RecommendationsLoaded struct {
	Books  []domain.BookRecord
	Append bool
	Err    error
}

// ReplacementFetched carries a single replacement book after one was
// marked as read. A failed fetch is reported but never surfaced as an
// error state.
type ReplacementFetched struct {
	Book domain.BookRecord
	Err  error
}

// BookShelved signals a book was added to a shelf.
type BookShelved struct {
	BookID string
	List   domain.ListName
	Err    error
}

// BookRemoved signals a book was removed from a shelf.
type BookRemoved struct {
	BookID string
	Err    error
}

// BookMoved signals a book was moved to the other shelf.
type BookMoved struct {
	BookID string
	List   domain.ListName
	Err    error
}

// ShelfCleared signals a shelf was emptied.
type ShelfCleared struct {
	List domain.ListName
	Err  error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDiscover is the preferences input and recommendations view.
	ViewDiscover ViewType = iota
	// ViewShelves shows the two reading lists.
	ViewShelves
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDiscover:
		return "discover"
	case ViewShelves:
		return "shelves"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
