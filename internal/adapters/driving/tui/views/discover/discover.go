// Package discover provides the recommendation view for the TUI.
// It holds the preferences input and the current batch of
// recommendations, and drives the recommendation service.
package discover

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/components/input"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/components/list"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/components/status"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/keymap"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/messages"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/styles"
	"github.com/jgold-code/shelfaware/internal/core/domain"
	"github.com/jgold-code/shelfaware/internal/core/ports/driving"
	"github.com/jgold-code/shelfaware/internal/logger"
)

// View represents the discover view with preferences input,
// recommendation list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.PreferencesInput
	list      *list.BookList
	statusbar *status.Bar

	recommendService driving.RecommendationService
	listService      driving.ReadingListService
	ctx              context.Context

	// lastPreferences is retained so "more" and replacement fetches
	// reuse the submitted preferences.
	lastPreferences string

	width      int
	height     int
	ready      bool
	loading    bool
	err        error
	focusInput bool // true = input mode (typing), false = results mode (navigating)
}

// NewView creates a new discover view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	recommendService driving.RecommendationService,
	listService driving.ReadingListService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:           s,
		keymap:           km,
		input:            input.NewPreferencesInput(s),
		list:             list.NewBookList(s, "Recommendations", "No recommendations yet"),
		statusbar:        status.NewBar(s, km),
		recommendService: recommendService,
		listService:      listService,
		ctx:              context.Background(),
		width:            80,
		height:           24,
		ready:            false,
		focusInput:       true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the discover view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecommendationsLoaded:
		v.handleRecommendationsLoaded(msg)
		return v, nil

	case messages.ReplacementFetched:
		v.handleReplacementFetched(msg)
		return v, nil

	case messages.BookShelved:
		return v, v.handleBookShelved(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.loading = false
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc in results mode returns to the preferences input
	if msg.Type == tea.KeyEsc {
		v.focusInput = true
		return v, v.input.Focus()
	}

	// Enter in input mode submits the preferences
	if msg.Type == tea.KeyEnter && v.focusInput {
		prefs := strings.TrimSpace(v.input.Value())
		if prefs == "" || v.loading {
			return v, nil
		}
		v.lastPreferences = prefs
		v.loading = true
		v.err = nil
		v.statusbar.SetState(status.StateLoading)
		v.focusInput = false
		v.input.Blur()
		return v, v.fetchRecommendations(prefs, false)
	}

	// Input mode: all keys go to input
	if v.focusInput {
		var inputCmd tea.Cmd
		v.input, inputCmd = v.input.Update(msg)
		return v, inputCmd
	}

	// Results mode: navigation
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "w":
		return v, v.shelveSelected(domain.ListWantToRead)
	case "r":
		return v, v.shelveSelected(domain.ListAlreadyRead)
	case "m":
		return v.handleMore()
	case "n":
		// New preferences: clear input and focus it
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	}

	return v, nil
}

// shelveSelected adds the selected book to the target shelf and reports
// the outcome as a BookShelved message.
func (v *View) shelveSelected(target domain.ListName) tea.Cmd {
	book := v.list.SelectedBook()
	if book == nil || v.listService == nil {
		return nil
	}

	b := *book
	return func() tea.Msg {
		var err error
		if target == domain.ListAlreadyRead {
			err = v.listService.AddToAlreadyRead(b)
		} else {
			err = v.listService.AddToWantToRead(b)
		}
		return messages.BookShelved{BookID: b.ID, List: target, Err: err}
	}
}

// handleBookShelved drops a shelved book from the display. Marking a
// book as read additionally fetches a single replacement in the
// background; a failed shelve keeps the book on screen.
func (v *View) handleBookShelved(msg messages.BookShelved) tea.Cmd {
	if msg.Err != nil {
		v.statusbar.SetMessage("Shelve: " + msg.Err.Error())
		return nil
	}

	title := v.titleFor(msg.BookID)
	v.removeFromDisplay(msg.BookID)

	if msg.List == domain.ListAlreadyRead {
		v.statusbar.SetMessage("Marked \"" + title + "\" as read")
		if v.lastPreferences == "" {
			return nil
		}
		return v.fetchReplacement(v.lastPreferences)
	}

	v.statusbar.SetMessage("Added \"" + title + "\" to want to read")
	return nil
}

// titleFor returns the displayed title for a book ID.
func (v *View) titleFor(id string) string {
	for _, b := range v.list.Books() {
		if b.ID == id {
			return b.Title
		}
	}
	return ""
}

// handleMore requests another batch appended to the current display.
func (v *View) handleMore() (*View, tea.Cmd) {
	if v.lastPreferences == "" || v.loading {
		return v, nil
	}
	v.loading = true
	v.statusbar.SetState(status.StateLoadingMore)
	return v, v.fetchRecommendations(v.lastPreferences, true)
}

// fetchRecommendations asks the recommendation service for a batch.
func (v *View) fetchRecommendations(preferences string, appendBatch bool) tea.Cmd {
	return func() tea.Msg {
		if v.recommendService == nil {
			return messages.ErrorOccurred{Err: ErrNoRecommendationService}
		}

		books, err := v.recommendService.Recommend(v.ctx, preferences)
		return messages.RecommendationsLoaded{Books: books, Append: appendBatch, Err: err}
	}
}

// fetchReplacement fetches a single book to backfill the display after
// one was marked as read.
func (v *View) fetchReplacement(preferences string) tea.Cmd {
	return func() tea.Msg {
		if v.recommendService == nil {
			return messages.ReplacementFetched{Err: ErrNoRecommendationService}
		}

		books, err := v.recommendService.Recommend(v.ctx, preferences)
		if err != nil {
			return messages.ReplacementFetched{Err: err}
		}
		if len(books) == 0 {
			return messages.ReplacementFetched{Err: domain.ErrNoRecommendations}
		}

		// Prefer a title not already on screen or shelved.
		for i := range books {
			if !v.isKnownTitle(books[i].Title) {
				return messages.ReplacementFetched{Book: books[i]}
			}
		}
		return messages.ReplacementFetched{Book: books[0]}
	}
}

// handleRecommendationsLoaded processes a fetched batch.
func (v *View) handleRecommendationsLoaded(msg messages.RecommendationsLoaded) {
	v.loading = false

	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	if msg.Append {
		v.list.SetBooks(append(v.list.Books(), msg.Books...))
	} else {
		v.list.SetBooks(msg.Books)
	}
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetBookCount(v.list.Count())

	// Switch to results mode after a successful fetch
	v.focusInput = false
	v.input.Blur()
}

// handleReplacementFetched appends a replacement book, or logs a failure.
func (v *View) handleReplacementFetched(msg messages.ReplacementFetched) {
	if msg.Err != nil {
		logger.Warn("replacement fetch failed: %v", msg.Err)
		return
	}

	v.list.SetBooks(append(v.list.Books(), msg.Book))
	v.statusbar.SetBookCount(v.list.Count())
}

// removeFromDisplay drops a book from the current list by ID.
func (v *View) removeFromDisplay(id string) {
	books := v.list.Books()
	for i := range books {
		if books[i].ID == id {
			v.list.SetBooks(append(books[:i:i], books[i+1:]...))
			break
		}
	}
	v.statusbar.SetBookCount(v.list.Count())
}

// isKnownTitle reports whether a title is already displayed or shelved.
func (v *View) isKnownTitle(title string) bool {
	for _, b := range v.list.Books() {
		if strings.EqualFold(b.Title, title) {
			return true
		}
	}
	if v.listService == nil {
		return false
	}
	for _, b := range v.listService.WantToRead() {
		if strings.EqualFold(b.Title, title) {
			return true
		}
	}
	for _, b := range v.listService.AlreadyRead() {
		if strings.EqualFold(b.Title, title) {
			return true
		}
	}
	return false
}

// View renders the discover view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("ShelfAware")
	sections = append(sections, header, "")

	inputView := v.input.View()
	sections = append(sections, inputView, "")

	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	listView := v.list.View()
	sections = append(sections, listView)

	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Preferences returns the current preferences input.
func (v *View) Preferences() string {
	return v.input.Value()
}

// SetPreferences sets the preferences input.
func (v *View) SetPreferences(preferences string) {
	v.input.SetValue(preferences)
}

// LastPreferences returns the most recently submitted preferences.
func (v *View) LastPreferences() string {
	return v.lastPreferences
}

// Books returns the currently displayed recommendations.
func (v *View) Books() []domain.BookRecord {
	return v.list.Books()
}

// SelectedIndex returns the index of the selected book.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedBook returns the currently selected book.
func (v *View) SelectedBook() *domain.BookRecord {
	return v.list.SelectedBook()
}

// Loading returns whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetBooks(nil)
	v.lastPreferences = ""
	v.loading = false
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
