package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgold-code/shelfaware/internal/core/domain"
)

// TestRecommendationsLoaded tests the RecommendationsLoaded message type
func TestRecommendationsLoaded_WithBooks(t *testing.T) {
	books := []domain.BookRecord{
		{ID: "book-0-1", Title: "Dune"},
		{ID: "book-1-1", Title: "Hyperion"},
	}
	msg := RecommendationsLoaded{Books: books, Err: nil}

	assert.Len(t, msg.Books, 2)
	assert.NoError(t, msg.Err)
}

func TestRecommendationsLoaded_WithError(t *testing.T) {
	err := errors.New("completion failed")
	msg := RecommendationsLoaded{Books: nil, Err: err}

	assert.Nil(t, msg.Books)
	assert.Error(t, msg.Err)
	assert.Equal(t, "completion failed", msg.Err.Error())
}

func TestRecommendationsLoaded_EmptyBooks(t *testing.T) {
	msg := RecommendationsLoaded{Books: []domain.BookRecord{}, Err: nil}

	assert.NotNil(t, msg.Books)
	assert.Empty(t, msg.Books)
	assert.NoError(t, msg.Err)
}

// TestReplacementFetched tests the ReplacementFetched message type
func TestReplacementFetched(t *testing.T) {
	t.Run("with book", func(t *testing.T) {
		msg := ReplacementFetched{Book: domain.BookRecord{ID: "book-0-2", Title: "Ubik"}}

		assert.Equal(t, "Ubik", msg.Book.Title)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := ReplacementFetched{Err: errors.New("fetch failed")}

		assert.Error(t, msg.Err)
	})
}

// TestBookShelved tests the BookShelved message type
func TestBookShelved(t *testing.T) {
	msg := BookShelved{BookID: "book-0-1", List: domain.ListWantToRead}

	assert.Equal(t, "book-0-1", msg.BookID)
	assert.Equal(t, domain.ListWantToRead, msg.List)
	assert.NoError(t, msg.Err)
}

// TestBookMoved tests the BookMoved message type
func TestBookMoved(t *testing.T) {
	msg := BookMoved{BookID: "book-0-1", List: domain.ListAlreadyRead}

	assert.Equal(t, "book-0-1", msg.BookID)
	assert.Equal(t, domain.ListAlreadyRead, msg.List)
}

// TestShelfCleared tests the ShelfCleared message type
func TestShelfCleared(t *testing.T) {
	msg := ShelfCleared{List: domain.ListWantToRead}

	assert.Equal(t, domain.ListWantToRead, msg.List)
	assert.NoError(t, msg.Err)
}

// TestViewChanged tests the ViewChanged message type
func TestViewChanged(t *testing.T) {
	testCases := []struct {
		name string
		view ViewType
	}{
		{"discover", ViewDiscover},
		{"shelves", ViewShelves},
		{"help", ViewHelp},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := ViewChanged{View: tc.view}
			assert.Equal(t, tc.view, msg.View)
		})
	}
}

// TestViewType_String tests the ViewType string representation
func TestViewType_String(t *testing.T) {
	testCases := []struct {
		view     ViewType
		expected string
	}{
		{ViewDiscover, "discover"},
		{ViewShelves, "shelves"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.view.String())
		})
	}
}

// TestErrorOccurred tests the ErrorOccurred message type
func TestErrorOccurred(t *testing.T) {
	err := errors.New("something broke")
	msg := ErrorOccurred{Err: err}

	require.Error(t, msg.Err)
	assert.Equal(t, "something broke", msg.Err.Error())
}

// TestQuit tests the Quit message type
func TestQuit(t *testing.T) {
	msg := Quit{}
	assert.NotNil(t, msg)
}
