package ports

import (
	"context"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// CreatePostInput carries the fields a client may supply for a new post.
// Author defaults to "Anonymous" when empty; Image is optional.
type CreatePostInput struct {
	Author  string
	Content string
	Image   *string
}

// CreateReplyInput carries the fields for a new reply on an existing post.
type CreateReplyInput struct {
	Author  string
	Content string
}

// CreatePatchInput carries the fields for a new patch-notes entry. All three
// are required.
type CreatePatchInput struct {
	Version string
	Date    string
	Text    string
}

// UpdatePatchInput carries a partial patch edit. A field is merged only when
// its pointer is non-nil and the value non-empty; everything else is left
// untouched.
type UpdatePatchInput struct {
	Version *string
	Date    *string
	Text    *string
}

// PostStore is the authoritative, order-preserving collection of rant posts.
// List never fails; mutations gate privilege before existence.
type PostStore interface {
	List(ctx context.Context) []domain.Post
	Create(ctx context.Context, input CreatePostInput) (domain.Post, error)
	Delete(ctx context.Context, id int64, claim domain.Claim) error
	AddReply(ctx context.Context, postID int64, input CreateReplyInput) (domain.Reply, error)
	DeleteReply(ctx context.Context, postID, replyID int64, claim domain.Claim) error
}

// PatchStore is the collection of patch-notes entries. Every mutation is
// admin-gated; the privilege check precedes validation and existence checks.
type PatchStore interface {
	List(ctx context.Context) []domain.Patch
	Create(ctx context.Context, input CreatePatchInput, claim domain.Claim) (domain.Patch, error)
	Update(ctx context.Context, id int64, input UpdatePatchInput, claim domain.Claim) (domain.Patch, error)
	Delete(ctx context.Context, id int64, claim domain.Claim) error
}

// UserStore holds registered accounts. Uniqueness is enforced by the identity
// service at registration time; matching is exact string equality.
type UserStore interface {
	List(ctx context.Context) []domain.User
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, bool)
	Taken(ctx context.Context, username, email string) bool
}
