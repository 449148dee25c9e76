package handler

// --- Request / Response types for the rant board and patch notes ---

type createPostRequest struct {
	Author  string  `json:"author"`
	Content string  `json:"content" validate:"required"`
	Image   *string `json:"image"`
}

type createReplyRequest struct {
	Author  string `json:"author"`
	Content string `json:"content" validate:"required"`
}

// claimRequest carries the client's privilege assertion on delete calls. The
// flag is re-checked server-side by the store's authorization policy.
type claimRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

type createPatchRequest struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Text    string `json:"text"`
	IsAdmin bool   `json:"isAdmin"`
}

// updatePatchRequest is a partial edit; absent fields stay untouched.
type updatePatchRequest struct {
	Version *string `json:"version"`
	Date    *string `json:"date"`
	Text    *string `json:"text"`
	IsAdmin bool    `json:"isAdmin"`
}

// messageResponse is the 200 envelope for successful deletions.
type messageResponse struct {
	Message string `json:"message"`
}
