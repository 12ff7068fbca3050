package api

// CredentialsRequest is the request body for POST /api/v1/signup and
// POST /api/v1/signin. The username is email-shaped; the password rule is
// enforced by the custom "password" validation in accounts.go.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,email"`
	Password string `json:"password" validate:"required,min=6,password"`
}

// CreateContentRequest is the request body for POST /api/v1/content.
type CreateContentRequest struct {
	Link  string `json:"link"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// DeleteContentRequest is the request body for DELETE /api/v1/content.
type DeleteContentRequest struct {
	ContentID string `json:"contentId"`
}

// ShareRequest is the request body for POST /api/v1/brain/share.
type ShareRequest struct {
	Share bool `json:"share"`
}

// MessageResponse is the {"message": ...} body shared by most endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries the validation detail alongside the fixed
// "Incorrect Format" message.
type ValidationErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// TokenResponse is the successful signin body.
type TokenResponse struct {
	Token string `json:"token"`
}

// HashResponse is the share-enable body.
type HashResponse struct {
	Hash string `json:"hash"`
}

// ContentItem is the JSON representation of one saved content item. Tags are
// present for shape compatibility but always empty — there is no tag
// management surface.
type ContentItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Link     string   `json:"link"`
	Type     string   `json:"type,omitempty"`
	Tags     []string `json:"tags"`
	Username string   `json:"username"`
}

// ContentListResponse is the body of GET /api/v1/content.
type ContentListResponse struct {
	Content []ContentItem `json:"content"`
}

// SharedBrainResponse is the public view of a shared brain.
type SharedBrainResponse struct {
	Username string        `json:"username"`
	Content  []ContentItem `json:"content"`
}
