package view

import (
	"strings"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// RenderPostList renders the rant board newest-first. Admin mode adds delete
// controls on posts and replies. Posts arrive in creation order and are
// reversed here; the server never re-orders.
func RenderPostList(posts []domain.Post, isAdmin bool) string {
	if len(posts) == 0 {
		return `<p class="empty">No posts yet. Be the first to share!</p>`
	}

	var b strings.Builder
	for i := len(posts) - 1; i >= 0; i-- {
		p := posts[i]
		b.WriteString(`<article class="post" data-id="` + formatID(p.ID) + `">`)
		b.WriteString(`<header><span class="author">` + esc(p.Author) + `</span>`)
		b.WriteString(`<time>` + formatTimestamp(p.Timestamp) + `</time></header>`)
		b.WriteString(`<p>` + esc(p.Content) + `</p>`)
		if p.Image != nil {
			b.WriteString(`<img class="post-image" src="` + esc(*p.Image) + `" alt="attachment">`)
		}
		if isAdmin {
			b.WriteString(`<button class="delete-post" data-id="` + formatID(p.ID) + `">Delete</button>`)
		}
		b.WriteString(renderReplies(p, isAdmin))
		b.WriteString(`</article>`)
	}
	return b.String()
}

func renderReplies(post domain.Post, isAdmin bool) string {
	if len(post.Replies) == 0 {
		return `<p class="no-replies">No replies yet.</p>`
	}

	var b strings.Builder
	b.WriteString(`<div class="replies">`)
	for _, r := range post.Replies {
		b.WriteString(`<div class="reply" data-id="` + formatID(r.ID) + `">`)
		b.WriteString(`<span class="author">` + esc(r.Author) + `</span>`)
		b.WriteString(`<time>` + formatTimestamp(r.Timestamp) + `</time>`)
		b.WriteString(`<p>` + esc(r.Content) + `</p>`)
		if isAdmin {
			b.WriteString(`<button class="delete-reply" data-post-id="` + formatID(post.ID) + `" data-id="` + formatID(r.ID) + `">Delete</button>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
