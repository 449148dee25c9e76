package memory

import (
	"context"
	"sync"
	"time"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// AnonymousAuthor is the display name used when a post or reply carries none.
const AnonymousAuthor = "Anonymous"

// PostStore keeps rant posts in insertion order. Replies live inside their
// parent post and are removed with it. Admin-gated mutations consult the
// authorization policy before any existence check.
type PostStore struct {
	mu     sync.RWMutex
	posts  []domain.Post
	ids    *idSource
	policy ports.AuthorizationPolicy
}

func NewPostStore(policy ports.AuthorizationPolicy) *PostStore {
	return &PostStore{ids: newIDSource(), policy: policy}
}

// List returns a snapshot of all posts in insertion order. Replies are never
// nil on the way out.
func (s *PostStore) List(_ context.Context) []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = clonePost(p)
	}
	return out
}

func (s *PostStore) Create(_ context.Context, input ports.CreatePostInput) (domain.Post, error) {
	if input.Content == "" {
		return domain.Post{}, domain.E(domain.ErrValidation, "Post content is required")
	}

	author := input.Author
	if author == "" {
		author = AnonymousAuthor
	}

	post := domain.Post{
		ID:        s.ids.next(),
		Author:    author,
		Content:   input.Content,
		Image:     input.Image,
		Timestamp: time.Now().UTC(),
		Replies:   []domain.Reply{},
	}

	s.mu.Lock()
	s.posts = append(s.posts, post)
	s.mu.Unlock()

	return clonePost(post), nil
}

// Delete removes a post and, with it, all of its replies. Privilege is
// checked before existence.
func (s *PostStore) Delete(_ context.Context, id int64, claim domain.Claim) error {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.E(domain.ErrForbidden, "Only administrators can delete posts")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return domain.E(domain.ErrNotFound, "Post not found")
}

func (s *PostStore) AddReply(_ context.Context, postID int64, input ports.CreateReplyInput) (domain.Reply, error) {
	if input.Content == "" {
		return domain.Reply{}, domain.E(domain.ErrValidation, "Reply content is required")
	}

	author := input.Author
	if author == "" {
		author = AnonymousAuthor
	}

	reply := domain.Reply{
		ID:        s.ids.next(),
		Author:    author,
		Content:   input.Content,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Replies = append(s.posts[i].Replies, reply)
			return reply, nil
		}
	}
	return domain.Reply{}, domain.E(domain.ErrNotFound, "Post not found")
}

// DeleteReply removes one reply. Precedence: privilege, then post existence,
// then reply existence.
func (s *PostStore) DeleteReply(_ context.Context, postID, replyID int64, claim domain.Claim) error {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.E(domain.ErrForbidden, "Only administrators can delete replies")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		for j, r := range s.posts[i].Replies {
			if r.ID == replyID {
				s.posts[i].Replies = append(s.posts[i].Replies[:j], s.posts[i].Replies[j+1:]...)
				return nil
			}
		}
		return domain.E(domain.ErrNotFound, "Reply not found")
	}
	return domain.E(domain.ErrNotFound, "Post not found")
}

func clonePost(p domain.Post) domain.Post {
	replies := make([]domain.Reply, len(p.Replies))
	copy(replies, p.Replies)
	p.Replies = replies
	return p
}
