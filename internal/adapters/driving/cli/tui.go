package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jgold-code/shelfaware/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for ShelfAware.

The TUI lets you describe your reading preferences, browse the
recommendations with keyboard navigation, and triage them into your
reading lists.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Submit / Select
  w        - Add to "want to read"
  r        - Mark as read (fetches a replacement)
  m        - Get more recommendations
  Tab      - Switch between discover and shelves
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if recommendService == nil || readingListService == nil {
		return errors.New("services not configured")
	}

	ports := &tui.Ports{
		Recommend:   recommendService,
		ReadingList: readingListService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
