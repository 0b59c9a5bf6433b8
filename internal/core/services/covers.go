package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jgold-code/shelfaware/internal/core/domain"
	"github.com/jgold-code/shelfaware/internal/core/ports/driven"
	"github.com/jgold-code/shelfaware/internal/core/ports/driving"
	"github.com/jgold-code/shelfaware/internal/logger"
)

// Ensure CoverService implements the interface.
var _ driving.CoverResolver = (*CoverService)(nil)

// DefaultCoverDelay is the inter-request pacing between catalogue
// lookups, chosen to stay under the unauthenticated-tier rate limit.
const DefaultCoverDelay = 200 * time.Millisecond

// placeholderBaseURL is the generated-cover endpoint used when no real
// cover can be found.
const placeholderBaseURL = "https://via.placeholder.com/200x300/4F46E5/FFFFFF"

// placeholderTitleLen caps the title prefix embedded in placeholder URLs.
const placeholderTitleLen = 50

// CoverService resolves best-effort cover image URLs from a volume
// catalogue. It never fails the caller: every query yields a usable URL,
// real or placeholder.
type CoverService struct {
	searcher driven.VolumeSearcher
	limiter  *rate.Limiter
}

// NewCoverService creates a cover service over the given catalogue.
// The delay paces consecutive lookups; zero or negative means
// DefaultCoverDelay.
func NewCoverService(searcher driven.VolumeSearcher, delay time.Duration) *CoverService {
	if delay <= 0 {
		delay = DefaultCoverDelay
	}
	// Burst of 1 keeps lookups strictly paced.
	return &CoverService{
		searcher: searcher,
		limiter:  rate.NewLimiter(rate.Every(delay), 1),
	}
}

// ResolveMany resolves one URL per query, sequentially and in input
// order, so that results correspond positionally to the input. The rate
// limiter bounds the outbound request rate.
func (s *CoverService) ResolveMany(ctx context.Context, queries []domain.CoverQuery) []string {
	logger.Section("Cover Resolution")
	logger.Debug("resolving %d covers", len(queries))

	urls := make([]string, len(queries))
	for i, q := range queries {
		urls[i] = s.ResolveOne(ctx, q)
	}
	return urls
}

// ResolveOne resolves a single cover URL. The result is never empty:
// catalogue failures and empty result sets degrade to a deterministic
// placeholder generated from the title.
func (s *CoverService) ResolveOne(ctx context.Context, query domain.CoverQuery) string {
	if err := s.limiter.Wait(ctx); err != nil {
		return PlaceholderURL(query.Title)
	}

	// Field-restricted query first, title-only as fallback.
	if u := s.lookup(ctx, fieldQuery(query.Title, query.Author)); u != "" {
		return u
	}
	if u := s.lookup(ctx, fieldQuery(query.Title, "")); u != "" {
		return u
	}

	logger.Debug("no cover for %q, using placeholder", query.Title)
	return PlaceholderURL(query.Title)
}

// lookup runs one catalogue query and returns the first result's best
// image URL, or the empty string. Errors are absorbed here.
func (s *CoverService) lookup(ctx context.Context, query string) string {
	volumes, err := s.searcher.Search(ctx, query, 1)
	if err != nil {
		logger.Warn("cover lookup failed for %q: %v", query, err)
		return ""
	}
	if len(volumes) == 0 {
		return ""
	}

	best := volumes[0].ImageLinks.Best()
	if best == "" {
		return ""
	}
	return upgradeScheme(best)
}

// fieldQuery builds a field-restricted catalogue query. The author part
// is omitted when empty.
func fieldQuery(title, author string) string {
	q := "intitle:" + title
	if author != "" {
		q += " inauthor:" + author
	}
	return q
}

// upgradeScheme rewrites plain-text image links to the secure scheme.
// Some catalogues still return http:// links.
func upgradeScheme(u string) string {
	if strings.HasPrefix(u, "http://") {
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}

// PlaceholderURL synthesises a deterministic cover URL from the title.
// This path never fails.
func PlaceholderURL(title string) string {
	if r := []rune(title); len(r) > placeholderTitleLen {
		title = string(r[:placeholderTitleLen])
	}
	return fmt.Sprintf("%s?text=%s", placeholderBaseURL, url.QueryEscape(title))
}
