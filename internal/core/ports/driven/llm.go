package driven

import "context"

// CompletionService provides chat-completion operations for generating
// book recommendations.
//
// Implementations may include:
//   - OpenAI (GPT-4, GPT-4o-mini)
//   - Any OpenAI-compatible endpoint (Azure OpenAI, local servers)
type CompletionService interface {
	// Chat conducts a single-turn conversation and returns the first
	// choice's message content.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Configured reports whether the service holds a usable credential.
	// When false, Chat fails without making a network call.
	Configured() bool
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
