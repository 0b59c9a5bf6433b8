// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui/styles"
)

// PreferencesInput wraps a bubbles textinput for describing reading tastes.
type PreferencesInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewPreferencesInput creates a new preferences input component.
func NewPreferencesInput(s *styles.Styles) *PreferencesInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. mind-bending sci-fi with unreliable narrators..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return &PreferencesInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init initialises the preferences input.
func (p *PreferencesInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (p *PreferencesInput) Update(msg tea.Msg) (*PreferencesInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the preferences input.
func (p *PreferencesInput) View() string {
	label := p.styles.Title.Render("I like: ")
	input := p.styles.InputField.Render(p.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (p *PreferencesInput) Value() string {
	return p.textinput.Value()
}

// SetValue sets the input value.
func (p *PreferencesInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (p *PreferencesInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Blur removes focus from the input.
func (p *PreferencesInput) Blur() {
	p.textinput.Blur()
}

// Focused returns whether the input is focused.
func (p *PreferencesInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth sets the width of the input.
func (p *PreferencesInput) SetWidth(width int) {
	p.width = width
	// Account for label and padding
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Width returns the current width.
func (p *PreferencesInput) Width() int {
	return p.width
}

// Reset clears the input.
func (p *PreferencesInput) Reset() {
	p.textinput.Reset()
}
