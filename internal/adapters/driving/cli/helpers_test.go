package cli

import (
	"context"

	"github.com/jgold-code/shelfaware/internal/core/domain"
)

// mockRecommendService implements driving.RecommendationService for testing.
type mockRecommendService struct {
	recommendFunc func(ctx context.Context, preferences string) ([]domain.BookRecord, error)

	gotBatchSize int
}

func (m *mockRecommendService) SetBatchSize(n int) {
	m.gotBatchSize = n
}

func (m *mockRecommendService) Recommend(
	ctx context.Context, preferences string,
) ([]domain.BookRecord, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, preferences)
	}
	return []domain.BookRecord{
		{
			ID:            "book-0-1700000000000",
			Title:         "Dune",
			Authors:       []string{"Frank Herbert"},
			Description:   "A desert planet epic.",
			Reason:        "Matches your preferences.",
			ImageURL:      "https://example.com/dune.jpg",
			PublishedDate: "1965-08-01",
			Categories:    []string{"Science Fiction"},
			AverageRating: 4.2,
			PageCount:     412,
		},
	}, nil
}

// mockListService implements driving.ReadingListService for testing.
type mockListService struct {
	want []domain.BookRecord
	read []domain.BookRecord
}

func (m *mockListService) Load() error { return nil }

func (m *mockListService) AddToWantToRead(book domain.BookRecord) error {
	_ = m.RemoveFromAlreadyRead(book.ID)
	if !m.IsInWantToRead(book.ID) {
		m.want = append(m.want, book)
	}
	return nil
}

func (m *mockListService) AddToAlreadyRead(book domain.BookRecord) error {
	_ = m.RemoveFromWantToRead(book.ID)
	if !m.IsInAlreadyRead(book.ID) {
		m.read = append(m.read, book)
	}
	return nil
}

func (m *mockListService) RemoveFromWantToRead(id string) error {
	for i := range m.want {
		if m.want[i].ID == id {
			m.want = append(m.want[:i:i], m.want[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockListService) RemoveFromAlreadyRead(id string) error {
	for i := range m.read {
		if m.read[i].ID == id {
			m.read = append(m.read[:i:i], m.read[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockListService) MoveToAlreadyRead(id string) error {
	for _, b := range m.want {
		if b.ID == id {
			return m.AddToAlreadyRead(b)
		}
	}
	return nil
}

func (m *mockListService) MoveToWantToRead(id string) error {
	for _, b := range m.read {
		if b.ID == id {
			return m.AddToWantToRead(b)
		}
	}
	return nil
}

func (m *mockListService) IsInWantToRead(id string) bool {
	for i := range m.want {
		if m.want[i].ID == id {
			return true
		}
	}
	return false
}

func (m *mockListService) IsInAlreadyRead(id string) bool {
	for i := range m.read {
		if m.read[i].ID == id {
			return true
		}
	}
	return false
}

func (m *mockListService) IsInAnyList(id string) bool {
	return m.IsInWantToRead(id) || m.IsInAlreadyRead(id)
}

func (m *mockListService) ClearWantToRead() error {
	m.want = nil
	return nil
}

func (m *mockListService) ClearAlreadyRead() error {
	m.read = nil
	return nil
}

func (m *mockListService) WantToRead() []domain.BookRecord {
	return append([]domain.BookRecord(nil), m.want...)
}

func (m *mockListService) AlreadyRead() []domain.BookRecord {
	return append([]domain.BookRecord(nil), m.read...)
}

// setupTestServices swaps in mock services and returns a cleanup func
// restoring the originals.
func setupTestServices() func() {
	oldRecommend := recommendService
	oldLists := readingListService

	recommendService = &mockRecommendService{}
	readingListService = &mockListService{}

	return func() {
		recommendService = oldRecommend
		readingListService = oldLists
	}
}
