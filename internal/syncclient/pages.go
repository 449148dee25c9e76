package syncclient

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
	"github.com/valo-rant/community-api/internal/view"
)

// RoleFilterAll shows every agent regardless of role.
const RoleFilterAll = "all"

// AgentsPage binds the sync client to the agent browse view. Search and role
// filtering are derived views over the working copy; neither triggers a
// re-fetch.
type AgentsPage struct {
	Client     *Client[domain.Agent]
	Search     string
	RoleFilter string
}

func NewAgentsPage(backend AgentBackend, logger zerolog.Logger) *AgentsPage {
	return &AgentsPage{
		Client:     New(backend.ListAgents, logger),
		RoleFilter: RoleFilterAll,
	}
}

// Visible applies the current search text and role filter to the working
// copy. Search matches the agent name case-insensitively.
func (p *AgentsPage) Visible() []domain.Agent {
	search := strings.ToLower(p.Search)
	return p.Client.ApplyLocalFilter(func(a domain.Agent) bool {
		if search != "" && !strings.Contains(strings.ToLower(a.DisplayName), search) {
			return false
		}
		if p.RoleFilter != RoleFilterAll && a.Role.DisplayName != p.RoleFilter {
			return false
		}
		return true
	})
}

func (p *AgentsPage) Render() string {
	if p.Client.State() == StateError {
		return `<p class="error">Failed to load agents. Please try again later.</p>`
	}
	return view.RenderAgentGrid(p.Visible())
}

// RantBoardPage binds the sync client to the rant board. Every mutation goes
// through the client so a successful write is always followed by a refresh.
type RantBoardPage struct {
	Client  *Client[domain.Post]
	backend PostBackend
}

func NewRantBoardPage(backend PostBackend, logger zerolog.Logger) *RantBoardPage {
	return &RantBoardPage{
		Client:  New(backend.ListPosts, logger),
		backend: backend,
	}
}

func (p *RantBoardPage) CreatePost(ctx context.Context, input ports.CreatePostInput) error {
	return p.Client.Mutate(ctx, func(ctx context.Context) error {
		_, err := p.backend.CreatePost(ctx, input)
		return err
	})
}

func (p *RantBoardPage) AddReply(ctx context.Context, postID int64, input ports.CreateReplyInput) error {
	return p.Client.Mutate(ctx, func(ctx context.Context) error {
		_, err := p.backend.AddReply(ctx, postID, input)
		return err
	})
}

func (p *RantBoardPage) DeletePost(ctx context.Context, id int64) error {
	return p.Client.MutateAdmin(ctx, func(ctx context.Context) error {
		return p.backend.DeletePost(ctx, id, p.claim())
	})
}

func (p *RantBoardPage) DeleteReply(ctx context.Context, postID, replyID int64) error {
	return p.Client.MutateAdmin(ctx, func(ctx context.Context) error {
		return p.backend.DeleteReply(ctx, postID, replyID, p.claim())
	})
}

func (p *RantBoardPage) Render() string {
	if p.Client.State() == StateError {
		return `<p class="error">Failed to load posts. Please try again later.</p>`
	}
	s := p.Client.Session()
	return view.RenderPostList(p.Client.WorkingCopy(), s != nil && s.IsAdmin)
}

func (p *RantBoardPage) claim() domain.Claim {
	s := p.Client.Session()
	return domain.Claim{IsAdmin: s != nil && s.IsAdmin}
}

// PatchNotesPage binds the sync client to the patch-notes view. EditMode
// exposes the admin controls and can only be switched on with an admin
// session.
type PatchNotesPage struct {
	Client   *Client[domain.Patch]
	backend  PatchBackend
	editMode bool
}

func NewPatchNotesPage(backend PatchBackend, logger zerolog.Logger) *PatchNotesPage {
	return &PatchNotesPage{
		Client:  New(backend.ListPatches, logger),
		backend: backend,
	}
}

// SetEditMode toggles the admin editing view. Turning it on without an admin
// session is refused; turning it off always succeeds.
func (p *PatchNotesPage) SetEditMode(on bool) error {
	if on {
		s := p.Client.Session()
		if s == nil || !s.IsAdmin {
			return ErrNotAdmin
		}
	}
	p.editMode = on
	return nil
}

func (p *PatchNotesPage) EditMode() bool {
	return p.editMode
}

func (p *PatchNotesPage) CreatePatch(ctx context.Context, input ports.CreatePatchInput) error {
	return p.Client.MutateAdmin(ctx, func(ctx context.Context) error {
		_, err := p.backend.CreatePatch(ctx, input, p.claim())
		return err
	})
}

func (p *PatchNotesPage) UpdatePatch(ctx context.Context, id int64, input ports.UpdatePatchInput) error {
	return p.Client.MutateAdmin(ctx, func(ctx context.Context) error {
		_, err := p.backend.UpdatePatch(ctx, id, input, p.claim())
		return err
	})
}

func (p *PatchNotesPage) DeletePatch(ctx context.Context, id int64) error {
	return p.Client.MutateAdmin(ctx, func(ctx context.Context) error {
		return p.backend.DeletePatch(ctx, id, p.claim())
	})
}

func (p *PatchNotesPage) Render() string {
	if p.Client.State() == StateError {
		return `<p class="error">Failed to load patch notes. Please try again later.</p>`
	}
	return view.RenderPatchList(p.Client.WorkingCopy(), p.editMode)
}

func (p *PatchNotesPage) claim() domain.Claim {
	s := p.Client.Session()
	return domain.Claim{IsAdmin: s != nil && s.IsAdmin}
}
