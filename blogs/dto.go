package blogs

// CreateRequest is the payload for POST /api/blogs. Likes is optional and
// defaults to zero.
type CreateRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// UpdateRequest is the partial payload for PUT /api/blogs/{id}. Only fields
// present in the request are applied; absent fields keep their stored value.
type UpdateRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}
