package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgold-code/shelfaware/internal/core/domain"
)

// MockRecommendationService implements driving.RecommendationService for testing.
type MockRecommendationService struct {
	RecommendFunc func(ctx context.Context, preferences string) ([]domain.BookRecord, error)
}

func (m *MockRecommendationService) Recommend(
	ctx context.Context, preferences string,
) ([]domain.BookRecord, error) {
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, preferences)
	}
	return nil, nil
}

// MockReadingListService implements driving.ReadingListService for testing.
// Mutations are recorded in-memory so tests can observe shelf state.
type MockReadingListService struct {
	LoadFunc func() error

	want []domain.BookRecord
	read []domain.BookRecord
}

func (m *MockReadingListService) Load() error {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil
}

func (m *MockReadingListService) AddToWantToRead(book domain.BookRecord) error {
	_ = m.RemoveFromAlreadyRead(book.ID)
	if !m.IsInWantToRead(book.ID) {
		m.want = append(m.want, book)
	}
	return nil
}

func (m *MockReadingListService) AddToAlreadyRead(book domain.BookRecord) error {
	_ = m.RemoveFromWantToRead(book.ID)
	if !m.IsInAlreadyRead(book.ID) {
		m.read = append(m.read, book)
	}
	return nil
}

func (m *MockReadingListService) RemoveFromWantToRead(id string) error {
	m.want = removeID(m.want, id)
	return nil
}

func (m *MockReadingListService) RemoveFromAlreadyRead(id string) error {
	m.read = removeID(m.read, id)
	return nil
}

func (m *MockReadingListService) MoveToAlreadyRead(id string) error {
	for _, b := range m.want {
		if b.ID == id {
			return m.AddToAlreadyRead(b)
		}
	}
	return nil
}

func (m *MockReadingListService) MoveToWantToRead(id string) error {
	for _, b := range m.read {
		if b.ID == id {
			return m.AddToWantToRead(b)
		}
	}
	return nil
}

func (m *MockReadingListService) IsInWantToRead(id string) bool {
	return containsID(m.want, id)
}

func (m *MockReadingListService) IsInAlreadyRead(id string) bool {
	return containsID(m.read, id)
}

func (m *MockReadingListService) IsInAnyList(id string) bool {
	return m.IsInWantToRead(id) || m.IsInAlreadyRead(id)
}

func (m *MockReadingListService) ClearWantToRead() error {
	m.want = nil
	return nil
}

func (m *MockReadingListService) ClearAlreadyRead() error {
	m.read = nil
	return nil
}

func (m *MockReadingListService) WantToRead() []domain.BookRecord {
	return append([]domain.BookRecord(nil), m.want...)
}

func (m *MockReadingListService) AlreadyRead() []domain.BookRecord {
	return append([]domain.BookRecord(nil), m.read...)
}

func removeID(books []domain.BookRecord, id string) []domain.BookRecord {
	for i := range books {
		if books[i].ID == id {
			return append(books[:i:i], books[i+1:]...)
		}
	}
	return books
}

func containsID(books []domain.BookRecord, id string) bool {
	for i := range books {
		if books[i].ID == id {
			return true
		}
	}
	return false
}

func TestNewPorts(t *testing.T) {
	recommend := &MockRecommendationService{}
	readingList := &MockReadingListService{}

	ports := NewPorts(recommend, readingList)

	require.NotNil(t, ports)
	assert.Equal(t, recommend, ports.Recommend)
	assert.Equal(t, readingList, ports.ReadingList)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Recommend:   &MockRecommendationService{},
		ReadingList: &MockReadingListService{},
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingRecommend(t *testing.T) {
	ports := &Ports{
		Recommend:   nil,
		ReadingList: &MockReadingListService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingRecommendationService)
}

func TestPorts_Validate_MissingReadingList(t *testing.T) {
	ports := &Ports{
		Recommend:   &MockRecommendationService{},
		ReadingList: nil,
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingReadingListService)
}
