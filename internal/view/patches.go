package view

import (
	"strings"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// FormatPatchText converts a patch's plain-text body to markup line by line:
// lines starting with "- " become list items with the marker stripped, other
// non-blank lines become section headings, and blank lines produce nothing.
func FormatPatchText(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString("<li>")
			b.WriteString(esc(strings.TrimPrefix(line, "- ")))
			b.WriteString("</li>")
		case strings.TrimSpace(line) != "":
			b.WriteString("<h3>")
			b.WriteString(esc(line))
			b.WriteString("</h3>")
		}
	}
	return b.String()
}

// RenderPatchList renders the patch-notes page body. In edit mode each entry
// additionally carries its edit and delete controls.
func RenderPatchList(patches []domain.Patch, editMode bool) string {
	if len(patches) == 0 {
		return `<p class="empty">No patch notes yet.</p>`
	}

	var b strings.Builder
	for _, p := range patches {
		b.WriteString(`<article class="patch">`)
		b.WriteString(`<h2>` + esc(p.Version) + `</h2>`)
		b.WriteString(`<span class="patch-date">` + esc(p.Date) + `</span>`)
		b.WriteString(`<div class="patch-body">` + FormatPatchText(p.Text) + `</div>`)
		if editMode {
			b.WriteString(`<button class="edit-patch" data-id="` + formatID(p.ID) + `">Edit</button>`)
			b.WriteString(`<button class="delete-patch" data-id="` + formatID(p.ID) + `">Delete</button>`)
		}
		b.WriteString(`</article>`)
	}
	return b.String()
}
