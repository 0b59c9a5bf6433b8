// Package shelves provides the reading list view for the TUI.
// It shows both shelves and supports moving, removing, and clearing.
package shelves

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/components/list"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/components/status"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/keymap"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/messages"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/styles"
	"github.com/jgold-code/shelfaware/internal/core/domain"
	"github.com/jgold-code/shelfaware/internal/core/ports/driving"
)

// View represents the shelves view with both reading lists.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	wantList  *list.BookList
	readList  *list.BookList
	statusbar *status.Bar

	listService driving.ReadingListService
	ctx         context.Context

	// activeShelf is the shelf receiving navigation keys.
	activeShelf domain.ListName

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new shelves view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	listService driving.ReadingListService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		wantList:    list.NewBookList(s, "Want to Read", "Nothing shelved yet"),
		readList:    list.NewBookList(s, "Already Read", "Nothing marked as read yet"),
		statusbar:   status.NewBar(s, km),
		listService: listService,
		ctx:         context.Background(),
		activeShelf: domain.ListWantToRead,
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view by loading both shelves.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	v.statusbar.SetState(status.StateShelves)
	return nil
}

// Refresh reloads both shelves from the reading list service.
func (v *View) Refresh() {
	if v.listService == nil {
		return
	}
	v.wantList.SetBooks(v.listService.WantToRead())
	v.readList.SetBooks(v.listService.AlreadyRead())
}

// Update handles messages for the shelves view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BookMoved:
		v.handleBookMoved(msg)
		return v, nil

	case messages.BookRemoved:
		v.handleBookRemoved(msg)
		return v, nil

	case messages.ShelfCleared:
		v.handleShelfCleared(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.activeList().MoveUp()
		return v, nil
	case tea.KeyDown:
		v.activeList().MoveDown()
		return v, nil
	case tea.KeyLeft:
		v.activeShelf = domain.ListWantToRead
		return v, nil
	case tea.KeyRight:
		v.activeShelf = domain.ListAlreadyRead
		return v, nil
	}

	var cmd tea.Cmd
	switch msg.String() {
	case "k":
		v.activeList().MoveUp()
	case "j":
		v.activeList().MoveDown()
	case "h":
		v.activeShelf = domain.ListWantToRead
	case "l":
		v.activeShelf = domain.ListAlreadyRead
	case "v":
		cmd = v.moveSelected()
	case "x":
		cmd = v.removeSelected()
	case "C":
		cmd = v.clearActive()
	}

	return v, cmd
}

// moveSelected moves the selected book to the other shelf and reports
// the outcome as a BookMoved message.
func (v *View) moveSelected() tea.Cmd {
	book := v.activeList().SelectedBook()
	if book == nil || v.listService == nil {
		return nil
	}

	id := book.ID
	from := v.activeShelf
	return func() tea.Msg {
		var err error
		if from == domain.ListWantToRead {
			err = v.listService.MoveToAlreadyRead(id)
		} else {
			err = v.listService.MoveToWantToRead(id)
		}
		return messages.BookMoved{BookID: id, List: from.Other(), Err: err}
	}
}

// removeSelected removes the selected book from its shelf and reports
// the outcome as a BookRemoved message.
func (v *View) removeSelected() tea.Cmd {
	book := v.activeList().SelectedBook()
	if book == nil || v.listService == nil {
		return nil
	}

	id := book.ID
	from := v.activeShelf
	return func() tea.Msg {
		var err error
		if from == domain.ListWantToRead {
			err = v.listService.RemoveFromWantToRead(id)
		} else {
			err = v.listService.RemoveFromAlreadyRead(id)
		}
		return messages.BookRemoved{BookID: id, Err: err}
	}
}

// clearActive empties the active shelf and reports the outcome as a
// ShelfCleared message.
func (v *View) clearActive() tea.Cmd {
	if v.listService == nil {
		return nil
	}

	shelf := v.activeShelf
	return func() tea.Msg {
		var err error
		if shelf == domain.ListWantToRead {
			err = v.listService.ClearWantToRead()
		} else {
			err = v.listService.ClearAlreadyRead()
		}
		return messages.ShelfCleared{List: shelf, Err: err}
	}
}

// handleBookMoved refreshes both shelves after a move. The moved title
// is looked up before the refresh, while the old snapshot still holds it.
func (v *View) handleBookMoved(msg messages.BookMoved) {
	if msg.Err != nil {
		v.statusbar.SetMessage("Move: " + msg.Err.Error())
		return
	}

	title := v.titleFor(msg.BookID)
	v.Refresh()
	v.statusbar.SetMessage("Moved \"" + title + "\" to " + msg.List.Description())
}

// handleBookRemoved refreshes both shelves after a removal.
func (v *View) handleBookRemoved(msg messages.BookRemoved) {
	if msg.Err != nil {
		v.statusbar.SetMessage("Remove: " + msg.Err.Error())
		return
	}

	title := v.titleFor(msg.BookID)
	v.Refresh()
	v.statusbar.SetMessage("Removed \"" + title + "\"")
}

// handleShelfCleared refreshes both shelves after a clear.
func (v *View) handleShelfCleared(msg messages.ShelfCleared) {
	if msg.Err != nil {
		v.statusbar.SetMessage("Clear: " + msg.Err.Error())
		return
	}

	v.Refresh()
	v.statusbar.SetMessage("Cleared " + msg.List.Description())
}

// titleFor returns the displayed title for a book ID, searching both
// shelves.
func (v *View) titleFor(id string) string {
	for _, b := range v.wantList.Books() {
		if b.ID == id {
			return b.Title
		}
	}
	for _, b := range v.readList.Books() {
		if b.ID == id {
			return b.Title
		}
	}
	return ""
}

// activeList returns the list receiving navigation keys.
func (v *View) activeList() *list.BookList {
	if v.activeShelf == domain.ListAlreadyRead {
		return v.readList
	}
	return v.wantList
}

// View renders the shelves view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 6)

	header := v.styles.Title.Render("My Shelves")
	sections = append(sections, header, "")

	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// Both shelves side by side, with the active one marked
	wantPane := v.renderPane(v.wantList, v.activeShelf == domain.ListWantToRead)
	readPane := v.renderPane(v.readList, v.activeShelf == domain.ListAlreadyRead)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, wantPane, "  ", readPane)
	sections = append(sections, panes)

	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPane renders one shelf with an active border when focused.
func (v *View) renderPane(l *list.BookList, active bool) string {
	pane := v.styles.Border.Padding(0, 1)
	if active {
		pane = pane.BorderForeground(v.styles.Theme().Primary)
	}
	return pane.Render(l.View())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	paneWidth := width/2 - 4
	if paneWidth < 30 {
		paneWidth = 30
	}
	v.wantList.SetDimensions(paneWidth, height-8)
	v.readList.SetDimensions(paneWidth, height-8)
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

// ActiveShelf returns the shelf receiving navigation keys.
func (v *View) ActiveShelf() domain.ListName {
	return v.activeShelf
}

// SetActiveShelf sets the shelf receiving navigation keys.
func (v *View) SetActiveShelf(name domain.ListName) {
	if name.IsValid() {
		v.activeShelf = name
	}
}

// WantToRead returns the books shown on the want-to-read shelf.
func (v *View) WantToRead() []domain.BookRecord {
	return v.wantList.Books()
}

// AlreadyRead returns the books shown on the already-read shelf.
func (v *View) AlreadyRead() []domain.BookRecord {
	return v.readList.Books()
}

// SelectedBook returns the selected book on the active shelf.
func (v *View) SelectedBook() *domain.BookRecord {
	return v.activeList().SelectedBook()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
