// Package view renders collection snapshots into HTML fragments. Rendering is
// a pure function of the data passed in: the whole fragment is rebuilt on
// every call and no state survives between calls.
package view

import (
	"html"
	"time"
)

// esc escapes user-supplied text for safe embedding in markup.
func esc(s string) string {
	return html.EscapeString(s)
}

// formatTimestamp renders a post or reply time the way the board displays it,
// e.g. "12/15/2024, 3:04:05 PM".
func formatTimestamp(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}
