package domain

// Patch is one versioned patch-notes entry. Version and Date are free text.
// Text uses a line-oriented micro-format: lines prefixed "- " are list items,
// other non-blank lines are section headings (see view.FormatPatchText).
// The ID is assigned at creation and stable across edits.
type Patch struct {
	ID      int64  `json:"id"`
	Version string `json:"version"`
	Date    string `json:"date"`
	Text    string `json:"text"`
}
