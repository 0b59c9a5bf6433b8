// Command shelfaware is the entrypoint for the ShelfAware CLI.
// It wires the driven adapters to the core services and hands the
// assembled services to the cobra command tree.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jgold-code/shelfaware/internal/adapters/driven/config/file"
	"github.com/jgold-code/shelfaware/internal/adapters/driven/llm/openai"
	"github.com/jgold-code/shelfaware/internal/adapters/driven/metadata/googlebooks"
	"github.com/jgold-code/shelfaware/internal/adapters/driven/storage/sqlite"
	"github.com/jgold-code/shelfaware/internal/adapters/driving/cli"
	"github.com/jgold-code/shelfaware/internal/core/ports/driven"
	"github.com/jgold-code/shelfaware/internal/core/services"
	"github.com/jgold-code/shelfaware/internal/logger"
)

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

// envAPIKey overrides the config file credential when set.
const envAPIKey = "SHELFAWARE_OPENAI_API_KEY"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	apiKey := os.Getenv(envAPIKey)
	if apiKey == "" {
		apiKey = configStore.GetString(driven.ConfigKeyOpenAIAPIKey)
	}

	completion := openai.NewCompletionService(openai.Config{
		APIKey:  apiKey,
		Model:   configStore.GetString(driven.ConfigKeyOpenAIModel),
		BaseURL: configStore.GetString(driven.ConfigKeyOpenAIBaseURL),
	})

	searcher := googlebooks.NewClient(googlebooks.Config{})

	coverDelay := services.DefaultCoverDelay
	if ms := configStore.GetInt(driven.ConfigKeyCoverDelayMS); ms > 0 {
		coverDelay = time.Duration(ms) * time.Millisecond
	}
	covers := services.NewCoverService(searcher, coverDelay)

	recommend := services.NewRecommendationService(completion, covers)

	store, err := sqlite.NewListStore("")
	if err != nil {
		return fmt.Errorf("opening list store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("closing list store: %v", cerr)
		}
	}()

	lists := services.NewReadingListService(store)
	if err := lists.Load(); err != nil {
		return fmt.Errorf("loading reading lists: %w", err)
	}

	cli.SetVersion(version)
	cli.SetServices(recommend, lists)

	return cli.Execute()
}
