package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgold-code/shelfaware/internal/core/domain"
)

var shelfJSON bool

var shelfCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Manage your reading lists",
	Long: `Shows and mutates the two persistent reading lists:
"want to read" and "already read". A book is in at most one list at a
time; moving it between lists is atomic.`,
}

var shelfShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show both reading lists",
	RunE:  runShelfShow,
}

var shelfMoveCmd = &cobra.Command{
	Use:   "move [book-id] [want|read]",
	Short: "Move a book to the given list",
	Args:  cobra.ExactArgs(2),
	RunE:  runShelfMove,
}

var shelfRemoveCmd = &cobra.Command{
	Use:   "remove [book-id]",
	Short: "Remove a book from whichever list holds it",
	Args:  cobra.ExactArgs(1),
	RunE:  runShelfRemove,
}

var shelfClearCmd = &cobra.Command{
	Use:   "clear [want|read]",
	Short: "Empty the given list",
	Args:  cobra.ExactArgs(1),
	RunE:  runShelfClear,
}

func init() {
	shelfShowCmd.Flags().BoolVar(&shelfJSON, "json", false, "output lists as JSON")
	shelfCmd.AddCommand(shelfShowCmd)
	shelfCmd.AddCommand(shelfMoveCmd)
	shelfCmd.AddCommand(shelfRemoveCmd)
	shelfCmd.AddCommand(shelfClearCmd)
	rootCmd.AddCommand(shelfCmd)
}

// parseListArg maps the CLI list argument to a ListName.
func parseListArg(arg string) (domain.ListName, error) {
	switch strings.ToLower(arg) {
	case "want", "want-to-read":
		return domain.ListWantToRead, nil
	case "read", "already-read":
		return domain.ListAlreadyRead, nil
	default:
		return "", fmt.Errorf("unknown list %q (expected \"want\" or \"read\")", arg)
	}
}

func runShelfShow(cmd *cobra.Command, _ []string) error {
	if readingListService == nil {
		return errors.New("reading list service not configured")
	}

	want := readingListService.WantToRead()
	read := readingListService.AlreadyRead()

	if shelfJSON {
		payload := map[string][]domain.BookRecord{
			domain.ListWantToRead.String():  want,
			domain.ListAlreadyRead.String(): read,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal lists: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputList(cmd, domain.ListWantToRead, want)
	cmd.Println()
	outputList(cmd, domain.ListAlreadyRead, read)
	return nil
}

func outputList(cmd *cobra.Command, name domain.ListName, books []domain.BookRecord) {
	cmd.Printf("%s (%d):\n", name.Description(), len(books))
	if len(books) == 0 {
		cmd.Println("  (empty)")
		return
	}
	for _, b := range books {
		cmd.Printf("  %s  %s by %s\n", b.ID, b.Title, strings.Join(b.Authors, ", "))
	}
}

func runShelfMove(_ *cobra.Command, args []string) error {
	if readingListService == nil {
		return errors.New("reading list service not configured")
	}

	id := args[0]
	target, err := parseListArg(args[1])
	if err != nil {
		return err
	}

	if !readingListService.IsInAnyList(id) {
		return fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}

	if target == domain.ListAlreadyRead {
		return readingListService.MoveToAlreadyRead(id)
	}
	return readingListService.MoveToWantToRead(id)
}

func runShelfRemove(_ *cobra.Command, args []string) error {
	if readingListService == nil {
		return errors.New("reading list service not configured")
	}

	id := args[0]
	if !readingListService.IsInAnyList(id) {
		return fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}

	if err := readingListService.RemoveFromWantToRead(id); err != nil {
		return err
	}
	return readingListService.RemoveFromAlreadyRead(id)
}

func runShelfClear(_ *cobra.Command, args []string) error {
	if readingListService == nil {
		return errors.New("reading list service not configured")
	}

	name, err := parseListArg(args[0])
	if err != nil {
		return err
	}

	if name == domain.ListAlreadyRead {
		return readingListService.ClearAlreadyRead()
	}
	return readingListService.ClearWantToRead()
}
