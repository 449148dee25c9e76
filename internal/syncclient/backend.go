package syncclient

import (
	"context"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// The backend interfaces are the capability boundary between the sync
// pattern and whatever holds the data. Two implementations exist: the remote
// HTTP store (backend/remote) and the offline key-value store
// (backend/local). Pages are written once against these interfaces.

// AgentBackend serves the read-only agent catalog.
type AgentBackend interface {
	ListAgents(ctx context.Context) ([]domain.Agent, error)
}

// PostBackend serves the rant board collection.
type PostBackend interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, input ports.CreatePostInput) (domain.Post, error)
	DeletePost(ctx context.Context, id int64, claim domain.Claim) error
	AddReply(ctx context.Context, postID int64, input ports.CreateReplyInput) (domain.Reply, error)
	DeleteReply(ctx context.Context, postID, replyID int64, claim domain.Claim) error
}

// PatchBackend serves the patch-notes collection.
type PatchBackend interface {
	ListPatches(ctx context.Context) ([]domain.Patch, error)
	CreatePatch(ctx context.Context, input ports.CreatePatchInput, claim domain.Claim) (domain.Patch, error)
	UpdatePatch(ctx context.Context, id int64, input ports.UpdatePatchInput, claim domain.Claim) (domain.Patch, error)
	DeletePatch(ctx context.Context, id int64, claim domain.Claim) error
}
