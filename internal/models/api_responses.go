package models

// MessageResponse is the body of every plain acknowledgement and error.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when a request body fails validation.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// TokenResponse is returned by a successful sign-in.
type TokenResponse struct {
	Token string `json:"token"`
}

// ContentCreatedResponse is returned after adding content.
type ContentCreatedResponse struct {
	Message string   `json:"message"`
	Content *Content `json:"content"`
}

// ContentListResponse wraps the caller's content items.
type ContentListResponse struct {
	Content []Content `json:"content"`
}

// ShareResponse carries the hash of an enabled share link.
type ShareResponse struct {
	Hash string `json:"hash"`
}

// TagListResponse wraps the caller's tags.
type TagListResponse struct {
	Tags []Tag `json:"tags"`
}

// ShareStatusResponse reports whether the caller's brain is shared.
type ShareStatusResponse struct {
	Enabled   bool   `json:"enabled"`
	Hash      string `json:"hash,omitempty"`
	ViewCount int64  `json:"view_count,omitempty"`
}
