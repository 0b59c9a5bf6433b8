package driven

// ListStore provides synchronous string key/value persistence for the
// reading lists. Values are JSON-serialised arrays of BookRecord; the
// reading list service owns serialisation so that stores stay generic.
type ListStore interface {
	// Get retrieves the value stored under key. The boolean is false
	// when the key has never been written.
	Get(key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	// The write is durable when Set returns.
	Set(key, value string) error

	// Close releases resources.
	Close() error
}
