package users

// BlogSummary is the short form of a blog embedded in a user listing.
type BlogSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Likes int    `json:"likes"`
}

// UserSummary is one row of the GET /api/users response: the public profile
// plus the entries the user owns.
type UserSummary struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Blogs    []BlogSummary `json:"blogs"`
}
