package driven

import "context"

// VolumeSearcher looks up book metadata from an external catalogue.
// The cover resolution service uses it to find real cover images;
// lookup failures degrade to placeholders and never propagate further.
type VolumeSearcher interface {
	// Search runs a catalogue query and returns up to limit volumes.
	// The query may use field-restricted syntax (intitle:, inauthor:)
	// where the backend supports it.
	Search(ctx context.Context, query string, limit int) ([]Volume, error)
}

// Volume is one catalogue entry returned by a VolumeSearcher.
type Volume struct {
	// Title is the volume title.
	Title string

	// Authors are the listed authors, possibly empty.
	Authors []string

	// ImageLinks holds the available cover images by quality tier.
	ImageLinks ImageLinks
}

// ImageLinks holds cover image URLs at the quality tiers the catalogue
// exposes. Any of the fields may be empty.
type ImageLinks struct {
	Large          string
	Medium         string
	Thumbnail      string
	SmallThumbnail string
}

// Best returns the highest-quality available image URL, or the empty
// string when the volume has no images at all.
func (l ImageLinks) Best() string {
	for _, u := range []string{l.Large, l.Medium, l.Thumbnail, l.SmallThumbnail} {
		if u != "" {
			return u
		}
	}
	return ""
}
