package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/messages"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/styles"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/views/discover"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/views/shelves"
	"github.com/jgold-code/shelfaware/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// discoverView is the preferences and recommendations view.
	discoverView *discover.View

	// shelvesView is the reading lists view.
	shelvesView *shelves.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	discoverView := discover.NewView(s, nil, ports.Recommend, ports.ReadingList)
	shelvesView := shelves.NewView(s, nil, ports.ReadingList)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		discoverView: discoverView,
		shelvesView:  shelvesView,
		currentView:  messages.ViewDiscover, // Start with discover
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.discoverView.WithContext(ctx)
	a.shelvesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("shelfaware - Book Recommendations"),
		a.discoverView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.discoverView.SetDimensions(msg.Width, msg.Height)
		a.shelvesView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global view switch with tab
		if msg.Type == tea.KeyTab {
			return a.switchView()
		}

		// q quits outside of text entry
		if msg.String() == "q" && !a.typing() {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewDiscover:
			a.discoverView, cmd = a.discoverView.Update(msg)
			a.err = a.discoverView.Err()
			return a, cmd

		case messages.ViewShelves:
			a.shelvesView, cmd = a.shelvesView.Update(msg)
			a.err = a.shelvesView.Err()
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes back to discover
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewDiscover
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.RecommendationsLoaded, messages.ReplacementFetched, messages.BookShelved:
		// Always land on the discover view regardless of where the
		// user navigated while the fetch was in flight.
		a.discoverView, cmd = a.discoverView.Update(msg)
		a.err = a.discoverView.Err()
		return a, cmd

	case messages.BookMoved, messages.BookRemoved, messages.ShelfCleared:
		a.shelvesView, cmd = a.shelvesView.Update(msg)
		a.err = a.shelvesView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewShelves {
			return a, a.shelvesView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewDiscover:
			a.discoverView, cmd = a.discoverView.Update(msg)
		case messages.ViewShelves:
			a.shelvesView, cmd = a.shelvesView.Update(msg)
		case messages.ViewHelp:
			// Help view doesn't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewDiscover:
		a.discoverView, cmd = a.discoverView.Update(msg)
	case messages.ViewShelves:
		a.shelvesView, cmd = a.shelvesView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// switchView cycles between the discover and shelves views.
func (a *App) switchView() (tea.Model, tea.Cmd) {
	if a.currentView == messages.ViewDiscover {
		a.currentView = messages.ViewShelves
		return a, a.shelvesView.Init()
	}
	a.currentView = messages.ViewDiscover
	return a, nil
}

// typing reports whether key input currently belongs to a text field.
func (a *App) typing() bool {
	return a.currentView == messages.ViewDiscover && a.discoverView.InputFocused()
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewDiscover:
		return a.discoverView.View()
	case messages.ViewShelves:
		return a.shelvesView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.discoverView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  tab         Switch between Discover and Shelves
  esc         Back
  ctrl+c      Quit

Discover:
  (type)      Describe what you like to read
  enter       Get recommendations
  j/k, ↑/↓    Navigate recommendations
  w           Add to "want to read"
  r           Mark as read (a replacement is fetched)
  m           More recommendations
  n           New preferences

Shelves:
  h/l, ←/→    Switch shelf
  j/k, ↑/↓    Navigate books
  v           Move to the other shelf
  x           Remove from shelf
  C           Clear shelf

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Books returns the currently displayed recommendations.
func (a *App) Books() []domain.BookRecord {
	return a.discoverView.Books()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.discoverView.SetDimensions(width, height)
	a.shelvesView.SetDimensions(width, height)
}
