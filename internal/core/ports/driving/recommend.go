package driving

import (
	"context"

	"github.com/jgold-code/shelfaware/internal/core/domain"
)

// RecommendationService turns free-text reading preferences into a
// batch of fully-enriched book records.
type RecommendationService interface {
	// Recommend issues one completion request for the given preference
	// text and returns the normalised, cover-enriched batch in the
	// order the model produced it.
	//
	// Errors: domain.ErrNotConfigured when no API key is set,
	// domain.ErrUpstream when the completion call fails,
	// domain.ErrMalformedResponse when the output is not a JSON array,
	// domain.ErrNoRecommendations when the array is empty.
	Recommend(ctx context.Context, preferences string) ([]domain.BookRecord, error)
}

// CoverResolver resolves displayable cover image URLs for books.
type CoverResolver interface {
	// ResolveMany resolves one URL per query, in input order, with the
	// same length as the input. It never fails: queries that cannot be
	// resolved yield deterministic placeholder URLs.
	ResolveMany(ctx context.Context, queries []domain.CoverQuery) []string

	// ResolveOne resolves a single cover URL. The result is never empty.
	ResolveOne(ctx context.Context, query domain.CoverQuery) string
}
