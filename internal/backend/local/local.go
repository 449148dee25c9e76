// Package local implements the sync-client backend interfaces on top of the
// opaque key-value store, for working against a local copy of the data when
// no server is reachable. It mirrors the server stores' rules exactly, so
// pages behave the same against either backend.
package local

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
	"github.com/valo-rant/community-api/internal/store/memory"
)

// Storage keys. Values are full JSON-encoded collection snapshots.
const (
	postsKey   = "rantPosts"
	patchesKey = "patches"
)

// Store keeps the rant board and patch notes in the key-value store. Each
// collection is read whole, mutated, and written back; a malformed stored
// value reads as an empty collection rather than an error.
type Store struct {
	mu     sync.Mutex
	kv     ports.KeyValueStore
	policy ports.AuthorizationPolicy
	lastID int64
}

func New(kv ports.KeyValueStore, policy ports.AuthorizationPolicy) *Store {
	return &Store{kv: kv, policy: policy}
}

func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) loadPosts(ctx context.Context) []domain.Post {
	raw, err := s.kv.Get(ctx, postsKey)
	if err != nil || raw == "" {
		return []domain.Post{}
	}
	var posts []domain.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return []domain.Post{}
	}
	return posts
}

func (s *Store) savePosts(ctx context.Context, posts []domain.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, postsKey, string(raw))
}

// loadPatches seeds the default content the first time the key is read, so an
// empty offline store still shows the shipped patch notes.
func (s *Store) loadPatches(ctx context.Context) []domain.Patch {
	raw, err := s.kv.Get(ctx, patchesKey)
	if err != nil {
		return []domain.Patch{}
	}
	if raw == "" {
		return memory.DefaultPatches()
	}
	var patches []domain.Patch
	if err := json.Unmarshal([]byte(raw), &patches); err != nil {
		return []domain.Patch{}
	}
	return patches
}

func (s *Store) savePatches(ctx context.Context, patches []domain.Patch) error {
	raw, err := json.Marshal(patches)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, patchesKey, string(raw))
}

// --- Rant board ---

func (s *Store) ListPosts(ctx context.Context) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPosts(ctx), nil
}

func (s *Store) CreatePost(ctx context.Context, input ports.CreatePostInput) (domain.Post, error) {
	if input.Content == "" {
		return domain.Post{}, domain.E(domain.ErrValidation, "Post content is required")
	}

	author := input.Author
	if author == "" {
		author = memory.AnonymousAuthor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := domain.Post{
		ID:        s.nextID(),
		Author:    author,
		Content:   input.Content,
		Image:     input.Image,
		Timestamp: time.Now().UTC(),
		Replies:   []domain.Reply{},
	}

	posts := append(s.loadPosts(ctx), post)
	if err := s.savePosts(ctx, posts); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (s *Store) DeletePost(ctx context.Context, id int64, claim domain.Claim) error {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.E(domain.ErrForbidden, "Only administrators can delete posts")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.loadPosts(ctx)
	for i, p := range posts {
		if p.ID == id {
			return s.savePosts(ctx, append(posts[:i], posts[i+1:]...))
		}
	}
	return domain.E(domain.ErrNotFound, "Post not found")
}

func (s *Store) AddReply(ctx context.Context, postID int64, input ports.CreateReplyInput) (domain.Reply, error) {
	if input.Content == "" {
		return domain.Reply{}, domain.E(domain.ErrValidation, "Reply content is required")
	}

	author := input.Author
	if author == "" {
		author = memory.AnonymousAuthor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reply := domain.Reply{
		ID:        s.nextID(),
		Author:    author,
		Content:   input.Content,
		Timestamp: time.Now().UTC(),
	}

	posts := s.loadPosts(ctx)
	for i := range posts {
		if posts[i].ID == postID {
			posts[i].Replies = append(posts[i].Replies, reply)
			if err := s.savePosts(ctx, posts); err != nil {
				return domain.Reply{}, err
			}
			return reply, nil
		}
	}
	return domain.Reply{}, domain.E(domain.ErrNotFound, "Post not found")
}

func (s *Store) DeleteReply(ctx context.Context, postID, replyID int64, claim domain.Claim) error {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.E(domain.ErrForbidden, "Only administrators can delete replies")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.loadPosts(ctx)
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		for j, r := range posts[i].Replies {
			if r.ID == replyID {
				posts[i].Replies = append(posts[i].Replies[:j], posts[i].Replies[j+1:]...)
				return s.savePosts(ctx, posts)
			}
		}
		return domain.E(domain.ErrNotFound, "Reply not found")
	}
	return domain.E(domain.ErrNotFound, "Post not found")
}

// --- Patch notes ---

func (s *Store) ListPatches(ctx context.Context) ([]domain.Patch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPatches(ctx), nil
}

func (s *Store) CreatePatch(ctx context.Context, input ports.CreatePatchInput, claim domain.Claim) (domain.Patch, error) {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.Patch{}, domain.E(domain.ErrForbidden, "Only administrators can create patches")
	}
	if input.Version == "" || input.Date == "" || input.Text == "" {
		return domain.Patch{}, domain.E(domain.ErrValidation, "All fields are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patch := domain.Patch{
		ID:      s.nextID(),
		Version: input.Version,
		Date:    input.Date,
		Text:    input.Text,
	}

	patches := append(s.loadPatches(ctx), patch)
	if err := s.savePatches(ctx, patches); err != nil {
		return domain.Patch{}, err
	}
	return patch, nil
}

func (s *Store) UpdatePatch(ctx context.Context, id int64, input ports.UpdatePatchInput, claim domain.Claim) (domain.Patch, error) {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.Patch{}, domain.E(domain.ErrForbidden, "Only administrators can edit patches")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patches := s.loadPatches(ctx)
	for i := range patches {
		if patches[i].ID != id {
			continue
		}
		if input.Version != nil && *input.Version != "" {
			patches[i].Version = *input.Version
		}
		if input.Date != nil && *input.Date != "" {
			patches[i].Date = *input.Date
		}
		if input.Text != nil && *input.Text != "" {
			patches[i].Text = *input.Text
		}
		if err := s.savePatches(ctx, patches); err != nil {
			return domain.Patch{}, err
		}
		return patches[i], nil
	}
	return domain.Patch{}, domain.E(domain.ErrNotFound, "Patch not found")
}

func (s *Store) DeletePatch(ctx context.Context, id int64, claim domain.Claim) error {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.E(domain.ErrForbidden, "Only administrators can delete patches")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patches := s.loadPatches(ctx)
	for i, p := range patches {
		if p.ID == id {
			return s.savePatches(ctx, append(patches[:i], patches[i+1:]...))
		}
	}
	return domain.E(domain.ErrNotFound, "Patch not found")
}
