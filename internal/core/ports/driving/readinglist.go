package driving

import "github.com/jgold-code/shelfaware/internal/core/domain"

// ReadingListService owns the two persisted reading lists.
//
// All operations are synchronous and idempotent with respect to repeated
// identical calls. The service maintains the invariant that a book ID is
// present in at most one list at any time, and mirrors both lists to
// persistent storage after every mutation.
type ReadingListService interface {
	// Load reads both lists from persistent storage. Records persisted
	// by older versions with missing fields are defaulted, not rejected.
	Load() error

	// AddToWantToRead appends the book to the want-to-read list,
	// removing it from already-read first if present there. No-op when
	// the book is already in want-to-read.
	AddToWantToRead(book domain.BookRecord) error

	// AddToAlreadyRead is symmetric to AddToWantToRead.
	AddToAlreadyRead(book domain.BookRecord) error

	// RemoveFromWantToRead deletes the book by ID if present.
	RemoveFromWantToRead(id string) error

	// RemoveFromAlreadyRead deletes the book by ID if present.
	RemoveFromAlreadyRead(id string) error

	// MoveToAlreadyRead moves the identified book from want-to-read to
	// already-read. No-op when the ID is not in want-to-read.
	MoveToAlreadyRead(id string) error

	// MoveToWantToRead is symmetric to MoveToAlreadyRead.
	MoveToWantToRead(id string) error

	// IsInWantToRead reports membership in the want-to-read list.
	IsInWantToRead(id string) bool

	// IsInAlreadyRead reports membership in the already-read list.
	IsInAlreadyRead(id string) bool

	// IsInAnyList reports membership in either list.
	IsInAnyList(id string) bool

	// ClearWantToRead empties the want-to-read list.
	ClearWantToRead() error

	// ClearAlreadyRead empties the already-read list.
	ClearAlreadyRead() error

	// WantToRead returns a snapshot of the want-to-read list in
	// insertion order.
	WantToRead() []domain.BookRecord

	// AlreadyRead returns a snapshot of the already-read list in
	// insertion order.
	AlreadyRead() []domain.BookRecord
}
