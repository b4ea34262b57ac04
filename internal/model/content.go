package model

// Content is a titled text item owned by the user who created it.
// UserID is nil for rows whose owner is unknown.
type Content struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Summary string `json:"summary"`
	UserID  *int   `json:"-"`
}

// ContentRequest is used for creating and updating content. It carries no
// owner field; the owner is always taken from the authenticated user.
type ContentRequest struct {
	Title   string `json:"title" binding:"required,max=30"`
	Body    string `json:"body" binding:"required,max=300"`
	Summary string `json:"summary" binding:"required,max=60"`
}

// SearchRequest carries the search term when it is sent as a JSON body
type SearchRequest struct {
	Search string `json:"search"`
}
