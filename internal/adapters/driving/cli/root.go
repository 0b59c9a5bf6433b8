// Package cli implements the cobra command tree for ShelfAware.
// It is a driving adapter: commands call core services through the
// driving ports and own only presentation concerns.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jgold-code/shelfaware/internal/core/ports/driving"
	"github.com/jgold-code/shelfaware/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the entrypoint before Execute.
var (
	recommendService   driving.RecommendationService
	readingListService driving.ReadingListService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "shelfaware",
	Short: "AI-powered book recommendations for your reading list",
	Long: `ShelfAware turns free-text reading preferences into a curated,
persistent book list. Describe your tastes in prose and get structured
recommendations with real cover art, then triage them into your
"want to read" and "already read" shelves.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// SetServices injects the core services used by the commands.
func SetServices(recommend driving.RecommendationService, lists driving.ReadingListService) {
	recommendService = recommend
	readingListService = lists
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
