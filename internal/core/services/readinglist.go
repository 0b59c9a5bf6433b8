package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jgold-code/shelfaware/internal/core/domain"
	"github.com/jgold-code/shelfaware/internal/core/ports/driven"
	"github.com/jgold-code/shelfaware/internal/core/ports/driving"
	"github.com/jgold-code/shelfaware/internal/logger"
)

// Ensure ReadingListService implements the interface.
var _ driving.ReadingListService = (*ReadingListService)(nil)

// ReadingListService owns the two reading lists in memory and mirrors
// them to a ListStore after every mutation.
//
// Invariant: a book ID is present in at most one list at any time.
// The add operations enforce this with remove-before-add ordering.
// Insertion order is preserved across persistence round-trips.
type ReadingListService struct {
	mu    sync.RWMutex
	store driven.ListStore

	wantToRead  []domain.BookRecord
	alreadyRead []domain.BookRecord
}

// NewReadingListService creates a reading list service backed by store.
// Call Load before use to read previously persisted lists.
func NewReadingListService(store driven.ListStore) *ReadingListService {
	return &ReadingListService{store: store}
}

// Load reads both lists from the store. A missing key yields an empty
// list. Records written by older versions may lack fields; they are
// defaulted on load rather than rejected.
func (s *ReadingListService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, err := s.loadList(domain.ListWantToRead)
	if err != nil {
		return err
	}
	read, err := s.loadList(domain.ListAlreadyRead)
	if err != nil {
		return err
	}

	s.wantToRead = want
	s.alreadyRead = read
	logger.Debug("loaded reading lists: want=%d read=%d", len(want), len(read))
	return nil
}

// loadList reads and decodes one list (caller must hold lock).
func (s *ReadingListService) loadList(name domain.ListName) ([]domain.BookRecord, error) {
	raw, ok, err := s.store.Get(name.String())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var books []domain.BookRecord
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	for i := range books {
		defaultRecord(&books[i])
	}
	return books, nil
}

// defaultRecord fills fields that older persisted records may lack.
func defaultRecord(b *domain.BookRecord) {
	if b.Title == "" {
		b.Title = domain.UnknownTitle
	}
	if len(b.Authors) == 0 {
		b.Authors = []string{domain.UnknownAuthor}
	}
	if b.Reason == "" {
		b.Reason = domain.DefaultReason
	}
}

// AddToWantToRead appends the book to want-to-read. If the book is in
// already-read it is removed from there first; if it is already in
// want-to-read the call is a no-op.
func (s *ReadingListService) AddToWantToRead(book domain.BookRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alreadyRead = removeByID(s.alreadyRead, book.ID)
	if !containsID(s.wantToRead, book.ID) {
		s.wantToRead = append(s.wantToRead, book)
	}
	return s.persist()
}

// AddToAlreadyRead appends the book to already-read. Symmetric to
// AddToWantToRead.
func (s *ReadingListService) AddToAlreadyRead(book domain.BookRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wantToRead = removeByID(s.wantToRead, book.ID)
	if !containsID(s.alreadyRead, book.ID) {
		s.alreadyRead = append(s.alreadyRead, book)
	}
	return s.persist()
}

// RemoveFromWantToRead deletes the book by ID if present; no-op otherwise.
func (s *ReadingListService) RemoveFromWantToRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wantToRead = removeByID(s.wantToRead, id)
	return s.persist()
}

// RemoveFromAlreadyRead deletes the book by ID if present; no-op otherwise.
func (s *ReadingListService) RemoveFromAlreadyRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alreadyRead = removeByID(s.alreadyRead, id)
	return s.persist()
}

// MoveToAlreadyRead moves the identified book from want-to-read to
// already-read. No-op when the ID is not in want-to-read.
func (s *ReadingListService) MoveToAlreadyRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := findByID(s.wantToRead, id)
	if !ok {
		return nil
	}
	s.wantToRead = removeByID(s.wantToRead, id)
	if !containsID(s.alreadyRead, id) {
		s.alreadyRead = append(s.alreadyRead, book)
	}
	return s.persist()
}

// MoveToWantToRead is symmetric to MoveToAlreadyRead.
func (s *ReadingListService) MoveToWantToRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := findByID(s.alreadyRead, id)
	if !ok {
		return nil
	}
	s.alreadyRead = removeByID(s.alreadyRead, id)
	if !containsID(s.wantToRead, id) {
		s.wantToRead = append(s.wantToRead, book)
	}
	return s.persist()
}

// IsInWantToRead reports membership in the want-to-read list.
func (s *ReadingListService) IsInWantToRead(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return containsID(s.wantToRead, id)
}

// IsInAlreadyRead reports membership in the already-read list.
func (s *ReadingListService) IsInAlreadyRead(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return containsID(s.alreadyRead, id)
}

// IsInAnyList reports membership in either list.
func (s *ReadingListService) IsInAnyList(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return containsID(s.wantToRead, id) || containsID(s.alreadyRead, id)
}

// ClearWantToRead empties the want-to-read list. Already-read is untouched.
func (s *ReadingListService) ClearWantToRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wantToRead = nil
	return s.persist()
}

// ClearAlreadyRead empties the already-read list. Want-to-read is untouched.
func (s *ReadingListService) ClearAlreadyRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alreadyRead = nil
	return s.persist()
}

// WantToRead returns a snapshot of the want-to-read list in insertion order.
func (s *ReadingListService) WantToRead() []domain.BookRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.wantToRead)
}

// AlreadyRead returns a snapshot of the already-read list in insertion order.
func (s *ReadingListService) AlreadyRead() []domain.BookRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.alreadyRead)
}

// persist writes both lists to the store (caller must hold lock).
// Both keys are written on every mutation so that storage never holds
// a book in two lists.
func (s *ReadingListService) persist() error {
	if err := s.persistList(domain.ListWantToRead, s.wantToRead); err != nil {
		return err
	}
	return s.persistList(domain.ListAlreadyRead, s.alreadyRead)
}

func (s *ReadingListService) persistList(name domain.ListName, books []domain.BookRecord) error {
	if books == nil {
		books = []domain.BookRecord{}
	}
	data, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.store.Set(name.String(), string(data)); err != nil {
		return fmt.Errorf("persist %s: %w", name, err)
	}
	return nil
}

func containsID(books []domain.BookRecord, id string) bool {
	for i := range books {
		if books[i].ID == id {
			return true
		}
	}
	return false
}

func findByID(books []domain.BookRecord, id string) (domain.BookRecord, bool) {
	for i := range books {
		if books[i].ID == id {
			return books[i], true
		}
	}
	return domain.BookRecord{}, false
}

func removeByID(books []domain.BookRecord, id string) []domain.BookRecord {
	for i := range books {
		if books[i].ID == id {
			return append(books[:i:i], books[i+1:]...)
		}
	}
	return books
}

func snapshot(books []domain.BookRecord) []domain.BookRecord {
	out := make([]domain.BookRecord, len(books))
	copy(out, books)
	return out
}
