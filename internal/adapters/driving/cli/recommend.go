package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgold-code/shelfaware/internal/core/domain"
)

var (
	recommendJSON bool
	recommendMore int
)

// batchSizer is implemented by recommendation services whose batch
// size can be overridden per invocation.
type batchSizer interface {
	SetBatchSize(n int)
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [preferences]",
	Short: "Get book recommendations for your reading preferences",
	Long: `Queries the completion endpoint with your free-text reading
preferences and prints a batch of recommendations, each enriched with
a cover image URL.

Example:
  shelfaware recommend "space opera with found-family themes"
  shelfaware recommend --more 5 "locked-room mysteries"`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output recommendations as JSON")
	recommendCmd.Flags().IntVar(&recommendMore, "more", 0, "request this many recommendations instead of the default 10")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	preferences := strings.TrimSpace(args[0])
	if preferences == "" {
		return errors.New("preferences must not be empty")
	}

	if recommendService == nil {
		return errors.New("recommendation service not configured")
	}

	if recommendMore > 0 {
		if sizer, ok := recommendService.(batchSizer); ok {
			sizer.SetBatchSize(recommendMore)
		}
	}

	books, err := recommendService.Recommend(context.Background(), preferences)
	if err != nil {
		return fmt.Errorf("%s", userMessage(err))
	}

	if recommendJSON {
		return outputBooksJSON(cmd, books)
	}
	outputBooksTable(cmd, books)
	return nil
}

// userMessage maps the recommendation error taxonomy to actionable text.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return "OpenAI API key is not configured. Set SHELFAWARE_OPENAI_API_KEY or add openai.api_key to " +
			"~/.shelfaware/config.toml."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "Failed to parse the recommendation response. Please try again."
	case errors.Is(err, domain.ErrNoRecommendations):
		return "No recommendations found. Try different preferences."
	default:
		return err.Error()
	}
}

func outputBooksJSON(cmd *cobra.Command, books []domain.BookRecord) error {
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputBooksTable(cmd *cobra.Command, books []domain.BookRecord) {
	cmd.Printf("Recommendations (%d books):\n\n", len(books))
	for i, b := range books {
		cmd.Printf("  [%d] %s by %s", i+1, b.Title, strings.Join(b.Authors, ", "))
		if year := b.PublishedYear(); year != "" {
			cmd.Printf(" (%s)", year)
		}
		cmd.Println()

		if cat := b.PrimaryCategory(); cat != "" {
			cmd.Printf("      %s", cat)
			if b.AverageRating > 0 {
				cmd.Printf(" · %.1f/5", b.AverageRating)
			}
			if b.PageCount > 0 {
				cmd.Printf(" · %d pages", b.PageCount)
			}
			cmd.Println()
		}
		cmd.Printf("      %s\n", b.Description)
		cmd.Printf("      Why: %s\n", b.Reason)
		cmd.Printf("      Cover: %s\n", b.ImageURL)
		cmd.Println()
	}
}
