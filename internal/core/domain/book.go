package domain

// Sentinel values applied when the completion response omits a field.
// Downstream code may assume every BookRecord is fully populated.
const (
	UnknownTitle       = "Unknown Title"
	UnknownAuthor      = "Unknown Author"
	DefaultDescription = "A great book worth reading."
	DefaultReason      = "Matches your preferences."
)

// BookRecord is the normalised, fully-enriched representation of one
// recommended book. It is created by the recommendation service, lives
// transiently in the displayed set, and is copied by value into at most
// one reading list. Fields are never mutated after creation.
type BookRecord struct {
	// ID is unique within an acquisition batch and across the two
	// persisted lists. It is assigned at acquisition time and is not
	// derived from title or author, so two acquisitions of the same
	// book produce distinct IDs.
	ID string `json:"id"`

	// Title is never empty; UnknownTitle when the upstream omits it.
	Title string `json:"title"`

	// Authors is never empty; a single UnknownAuthor entry when the
	// upstream omits it.
	Authors []string `json:"authors"`

	// Description is a short summary.
	Description string `json:"description"`

	// ImageURL is a displayable cover URL, real or placeholder.
	// Never empty once the record leaves the recommendation service.
	ImageURL string `json:"imageUrl"`

	// AverageRating is in [0,5] when present.
	AverageRating float64 `json:"averageRating,omitempty"`

	// PublishedDate is year-first; only the first four characters are
	// significant for display.
	PublishedDate string `json:"publishedDate,omitempty"`

	// PageCount is non-negative when present.
	PageCount int `json:"pageCount,omitempty"`

	// Categories holds genre tags; only the first is displayed.
	Categories []string `json:"categories,omitempty"`

	// Reason explains relevance to the stated preferences.
	Reason string `json:"reason"`
}

// PrimaryAuthor returns the first author, used for cover lookups.
func (b BookRecord) PrimaryAuthor() string {
	if len(b.Authors) == 0 {
		return UnknownAuthor
	}
	return b.Authors[0]
}

// PublishedYear returns the four-character year prefix of PublishedDate,
// or the empty string when no date is known.
func (b BookRecord) PublishedYear() string {
	if len(b.PublishedDate) < 4 {
		return ""
	}
	return b.PublishedDate[:4]
}

// PrimaryCategory returns the first category, or the empty string.
func (b BookRecord) PrimaryCategory() string {
	if len(b.Categories) == 0 {
		return ""
	}
	return b.Categories[0]
}

// CoverQuery identifies one book for cover resolution.
type CoverQuery struct {
	Title  string
	Author string
}
