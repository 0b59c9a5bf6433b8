// Package googlebooks provides a client for the Google Books volumes API,
// used to resolve cover images for recommended books.
package googlebooks

// volumesResponse is the raw Google Books API response.
type volumesResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

// volumeItem is a single volume from the volumes list.
type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

// volumeInfo holds the metadata of one volume.
type volumeInfo struct {
	Title      string      `json:"title"`
	Authors    []string    `json:"authors"`
	ImageLinks *imageLinks `json:"imageLinks"`
}

// imageLinks holds cover URLs by quality tier. The API omits tiers it
// does not have; most volumes only carry the thumbnail sizes.
type imageLinks struct {
	Large          string `json:"large"`
	Medium         string `json:"medium"`
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}
