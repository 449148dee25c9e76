package domain

import "time"

// Reply is a short response attached to a Post. Replies are owned by their
// parent post and removed with it.
type Reply struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Post is a rant-board entry. Image is an optional data-URL payload and
// serialises as null when absent. IDs are store-assigned, millisecond-derived
// and strictly increasing, so numeric order equals creation order.
type Post struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	Timestamp time.Time `json:"timestamp"`
	Replies   []Reply   `json:"replies"`
}
