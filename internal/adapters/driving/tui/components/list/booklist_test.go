package list

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/styles"
	"github.com/jgold-code/shelfaware/internal/core/domain"
)

func testBooks() []domain.BookRecord {
	return []domain.BookRecord{
		{
			ID:            "book-0-1",
			Title:         "Dune",
			Authors:       []string{"Frank Herbert"},
			PublishedDate: "1965-08-01",
			Categories:    []string{"Science Fiction"},
			AverageRating: 4.2,
			Reason:        "Matches your taste for political intrigue.",
		},
		{
			ID:      "book-1-1",
			Title:   "Hyperion",
			Authors: []string{"Dan Simmons"},
		},
		{
			ID:      "book-2-1",
			Title:   "Ubik",
			Authors: []string{"Philip K. Dick"},
		},
	}
}

func TestNewBookList(t *testing.T) {
	bl := NewBookList(styles.DefaultStyles(), "Recommendations", "No books yet")

	require.NotNil(t, bl)
	assert.True(t, bl.IsEmpty())
	assert.Equal(t, 0, bl.Selected())
}

func TestNewBookList_NilStyles(t *testing.T) {
	bl := NewBookList(nil, "", "")

	require.NotNil(t, bl)
}

func TestBookList_SetBooks(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")

	bl.SetBooks(testBooks())

	assert.Equal(t, 3, bl.Count())
	assert.False(t, bl.IsEmpty())
}

func TestBookList_SetBooks_ClampsSelection(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	bl.SetBooks(testBooks())
	bl.SetSelected(2)

	// Shrinking the list pulls the selection back in range
	bl.SetBooks(testBooks()[:1])

	assert.Equal(t, 0, bl.Selected())
}

func TestBookList_Navigation(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	bl.SetBooks(testBooks())

	bl.MoveDown()
	assert.Equal(t, 1, bl.Selected())

	bl.MoveDown()
	assert.Equal(t, 2, bl.Selected())

	// At the bottom boundary
	bl.MoveDown()
	assert.Equal(t, 2, bl.Selected())

	bl.MoveUp()
	assert.Equal(t, 1, bl.Selected())
}

func TestBookList_Navigation_TopBoundary(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	bl.SetBooks(testBooks())

	bl.MoveUp()

	assert.Equal(t, 0, bl.Selected())
}

func TestBookList_Update_KeyNavigation(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	bl.SetBooks(testBooks())

	bl, _ = bl.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, bl.Selected())

	bl, _ = bl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, bl.Selected())

	bl, _ = bl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, bl.Selected())

	bl, _ = bl.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, bl.Selected())
}

func TestBookList_SelectedBook(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	bl.SetBooks(testBooks())
	bl.SetSelected(1)

	book := bl.SelectedBook()

	require.NotNil(t, book)
	assert.Equal(t, "Hyperion", book.Title)
}

func TestBookList_SelectedBook_Empty(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")

	assert.Nil(t, bl.SelectedBook())
}

func TestBookList_SetSelected_OutOfBounds(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	bl.SetBooks(testBooks())

	bl.SetSelected(99)
	assert.Equal(t, 0, bl.Selected())

	bl.SetSelected(-1)
	assert.Equal(t, 0, bl.Selected())
}

func TestBookList_View_Empty(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "No books yet")

	view := bl.View()

	assert.Contains(t, view, "Recommendations (0)")
	assert.Contains(t, view, "No books yet")
}

func TestBookList_View_WithBooks(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	bl.SetBooks(testBooks())
	bl.SetDimensions(80, 24)

	view := bl.View()

	assert.Contains(t, view, "Recommendations (3)")
	assert.Contains(t, view, "Dune")
	assert.Contains(t, view, "Frank Herbert")
	assert.Contains(t, view, "1965")
	assert.Contains(t, view, "Science Fiction")
	assert.Contains(t, view, "political intrigue")
}

func TestBookList_View_SelectionIndicator(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	bl.SetBooks(testBooks())
	bl.SetDimensions(80, 24)
	bl.SetSelected(1)

	view := bl.View()

	assert.Contains(t, view, "> ")
}

func TestBookList_View_TruncatesLongTitles(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	long := domain.BookRecord{
		ID:    "book-0-1",
		Title: "An Exceptionally Long Book Title That Cannot Possibly Fit In A Narrow Terminal Window At All",
	}
	bl.SetBooks([]domain.BookRecord{long})
	bl.SetDimensions(40, 24)

	view := bl.View()

	assert.Contains(t, view, "...")
}

func TestBookList_View_TruncatesOnRuneBoundary(t *testing.T) {
	bl := NewBookList(nil, "Recommendations", "")
	long := domain.BookRecord{
		ID:    "book-0-1",
		Title: strings.Repeat("本", 60),
	}
	bl.SetBooks([]domain.BookRecord{long})
	bl.SetDimensions(40, 24)

	view := bl.View()

	// The cut never splits a multi-byte character
	assert.True(t, utf8.ValidString(view))
	assert.Contains(t, view, "本...")
}

func TestBookList_SetDimensions(t *testing.T) {
	bl := NewBookList(nil, "", "")

	bl.SetDimensions(120, 40)

	assert.Equal(t, 120, bl.Width())
	assert.Equal(t, 40, bl.Height())
}
