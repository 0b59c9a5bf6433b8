// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/styles"
	"github.com/jgold-code/shelfaware/internal/core/domain"
)

// BookList displays book records in a navigable list.
type BookList struct {
	title    string
	emptyMsg string
	books    []domain.BookRecord
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewBookList creates a new book list component.
func NewBookList(s *styles.Styles, title, emptyMsg string) *BookList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if emptyMsg == "" {
		emptyMsg = "No books"
	}

	return &BookList{
		title:    title,
		emptyMsg: emptyMsg,
		books:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the book list.
func (b *BookList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (b *BookList) Update(msg tea.Msg) (*BookList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			b.MoveUp()
		case tea.KeyDown:
			b.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			b.MoveUp()
		case "j":
			b.MoveDown()
		}
	}
	return b, nil
}

// View renders the book list.
func (b *BookList) View() string {
	lines := make([]string, 0, len(b.books)*3+2)

	if b.title != "" {
		header := b.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", b.title, len(b.books)))
		lines = append(lines, header, "")
	}

	if len(b.books) == 0 {
		lines = append(lines, b.styles.Muted.Render(b.emptyMsg))
		return strings.Join(lines, "\n")
	}

	// Each book takes up to 3 lines (title, authors, reason preview)
	visibleCount := (b.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if b.selected >= visibleCount {
		start = b.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(b.books) {
		end = len(b.books)
	}

	for i := start; i < end; i++ {
		lines = append(lines, b.renderBook(i, &b.books[i]))
	}

	return strings.Join(lines, "\n")
}

// renderBook formats a single book with authors and reason preview.
func (b *BookList) renderBook(index int, book *domain.BookRecord) string {
	indicator := "  "
	if index == b.selected {
		indicator = "> "
	}

	title := book.Title
	if title == "" {
		title = domain.UnknownTitle
	}

	maxTitleLen := b.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title = truncate(title, maxTitleLen)

	rating := ""
	if book.AverageRating > 0 {
		rating = fmt.Sprintf("★ %.1f", book.AverageRating)
	}

	var titleLine string
	if index == b.selected {
		titleLine = b.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, rating))
	} else {
		titleLine = b.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			b.styles.Muted.Render(rating)
	}

	// Author line with year and category when present
	meta := book.PrimaryAuthor()
	if year := book.PublishedYear(); year != "" {
		meta += " · " + year
	}
	if cat := book.PrimaryCategory(); cat != "" {
		meta += " · " + cat
	}
	metaLine := b.styles.Subtitle.Render("    " + meta)

	preview := book.Reason
	if preview == "" {
		preview = book.Description
	}
	maxPreviewLen := b.width - 6
	if maxPreviewLen < 20 {
		maxPreviewLen = 20
	}
	preview = truncate(preview, maxPreviewLen)
	previewLine := b.styles.Muted.Render("    " + preview)

	return titleLine + "\n" + metaLine + "\n" + previewLine
}

// truncate shortens s to at most max characters, ending in "..." when
// cut. It counts runes so multi-byte text is never split mid-sequence.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// SetBooks updates the book list.
func (b *BookList) SetBooks(books []domain.BookRecord) {
	b.books = books
	if b.selected >= len(books) {
		b.selected = len(books) - 1
	}
	if b.selected < 0 {
		b.selected = 0
	}
}

// Books returns the current books.
func (b *BookList) Books() []domain.BookRecord {
	return b.books
}

// Selected returns the index of the selected book.
func (b *BookList) Selected() int {
	return b.selected
}

// SetSelected sets the selected index.
func (b *BookList) SetSelected(index int) {
	if index >= 0 && index < len(b.books) {
		b.selected = index
	}
}

// SelectedBook returns the currently selected book, or nil if none.
func (b *BookList) SelectedBook() *domain.BookRecord {
	if len(b.books) == 0 || b.selected < 0 || b.selected >= len(b.books) {
		return nil
	}
	return &b.books[b.selected]
}

// MoveUp moves selection up.
func (b *BookList) MoveUp() {
	if b.selected > 0 {
		b.selected--
	}
}

// MoveDown moves selection down.
func (b *BookList) MoveDown() {
	if b.selected < len(b.books)-1 {
		b.selected++
	}
}

// SetDimensions sets the component dimensions.
func (b *BookList) SetDimensions(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the current width.
func (b *BookList) Width() int {
	return b.width
}

// Height returns the current height.
func (b *BookList) Height() int {
	return b.height
}

// Count returns the number of books.
func (b *BookList) Count() int {
	return len(b.books)
}

// IsEmpty returns whether the list is empty.
func (b *BookList) IsEmpty() bool {
	return len(b.books) == 0
}
