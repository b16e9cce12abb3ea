// Package blogs implements the blog catalog: persistence of entries, the
// ownership rule on mutations, and the HTTP handlers for the /api/blogs
// routes. Every entry belongs to the user who created it; only that user may
// update or delete it.
package blogs

// UserRef is the minimal owner profile embedded in API responses. The owner
// relation is stored as a foreign key and expanded at read time, never
// duplicated into the blog row.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Blog represents a single catalog entry. The store assigns the identifier,
// which is always exposed to clients as "id".
type Blog struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author,omitempty"`
	URL    string  `json:"url"`
	Likes  int     `json:"likes"`
	Owner  UserRef `json:"owner"`
}
