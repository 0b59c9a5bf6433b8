package domain

// ListName identifies one of the two persisted reading lists.
type ListName string

// The two reading lists. A book ID is present in at most one of them
// at any time; adding to one atomically removes from the other.
const (
	// ListWantToRead holds books the user intends to read.
	ListWantToRead ListName = "want_to_read"

	// ListAlreadyRead holds books the user has finished.
	ListAlreadyRead ListName = "already_read"
)

// IsValid returns true if the list name is recognised.
func (n ListName) IsValid() bool {
	switch n {
	case ListWantToRead, ListAlreadyRead:
		return true
	default:
		return false
	}
}

// Other returns the opposite list.
func (n ListName) Other() ListName {
	if n == ListWantToRead {
		return ListAlreadyRead
	}
	return ListWantToRead
}

// String returns the string representation.
func (n ListName) String() string {
	return string(n)
}

// Description returns a human-readable label for the list.
func (n ListName) Description() string {
	switch n {
	case ListWantToRead:
		return "Want to Read"
	case ListAlreadyRead:
		return "Already Read"
	default:
		return "Unknown"
	}
}
