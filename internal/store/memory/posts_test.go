package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/valo-rant/community-api/internal/auth"
	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

var (
	adminClaim   = domain.Claim{IsAdmin: true}
	noAdminClaim = domain.Claim{}
)

func newPostStore() *PostStore {
	return NewPostStore(auth.ClaimPolicy{})
}

func TestCreatePost(t *testing.T) {
	store := newPostStore()

	post, err := store.Create(context.Background(), ports.CreatePostInput{
		Author:  "alice",
		Content: "Jett mains, explain yourselves",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID == 0 {
		t.Fatal("expected a non-zero id")
	}
	if post.Replies == nil || len(post.Replies) != 0 {
		t.Fatal("expected an empty, non-nil replies slice")
	}
	if post.Image != nil {
		t.Fatal("expected image to stay nil when absent")
	}

	posts := store.List(context.Background())
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
}

func TestCreatePostDefaultsAuthor(t *testing.T) {
	store := newPostStore()

	post, err := store.Create(context.Background(), ports.CreatePostInput{Content: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Author != AnonymousAuthor {
		t.Fatalf("got author %q, want %q", post.Author, AnonymousAuthor)
	}
}

func TestCreatePostRequiresContent(t *testing.T) {
	store := newPostStore()

	_, err := store.Create(context.Background(), ports.CreatePostInput{Author: "alice"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation kind, got %v", err)
	}
	if err.Error() != "Post content is required" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestPostIDsStrictlyIncreasing(t *testing.T) {
	store := newPostStore()

	var last int64
	for i := 0; i < 100; i++ {
		post, err := store.Create(context.Background(), ports.CreatePostInput{Content: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post.ID <= last {
			t.Fatalf("id %d not greater than previous %d", post.ID, last)
		}
		last = post.ID
	}
}

func TestDeletePostPrivilegeBeforeExistence(t *testing.T) {
	store := newPostStore()

	// Unknown id, non-admin claim: the privilege error wins.
	err := store.Delete(context.Background(), 999, noAdminClaim)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden kind, got %v", err)
	}
	if err.Error() != "Only administrators can delete posts" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	// Same id with an admin claim now reports not-found.
	err = store.Delete(context.Background(), 999, adminClaim)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
	if err.Error() != "Post not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestDeletePostRemovesReplies(t *testing.T) {
	store := newPostStore()

	post, _ := store.Create(context.Background(), ports.CreatePostInput{Content: "rant"})
	if _, err := store.AddReply(context.Background(), post.ID, ports.CreateReplyInput{Content: "reply"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(context.Background(), post.ID, adminClaim); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(store.List(context.Background())); got != 0 {
		t.Fatalf("expected empty board, got %d posts", got)
	}
}

func TestAddReply(t *testing.T) {
	store := newPostStore()

	post, _ := store.Create(context.Background(), ports.CreatePostInput{Content: "rant"})

	reply, err := store.AddReply(context.Background(), post.ID, ports.CreateReplyInput{Author: "bob", Content: "agreed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.ID <= post.ID {
		t.Fatalf("reply id %d should exceed post id %d", reply.ID, post.ID)
	}

	posts := store.List(context.Background())
	if len(posts[0].Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(posts[0].Replies))
	}
}

func TestAddReplyValidationBeforeExistence(t *testing.T) {
	store := newPostStore()

	// Missing content is reported even when the post does not exist.
	_, err := store.AddReply(context.Background(), 999, ports.CreateReplyInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation kind, got %v", err)
	}
	if err.Error() != "Reply content is required" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	_, err = store.AddReply(context.Background(), 999, ports.CreateReplyInput{Content: "hi"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
	if err.Error() != "Post not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestDeleteReplyPrecedence(t *testing.T) {
	store := newPostStore()

	post, _ := store.Create(context.Background(), ports.CreatePostInput{Content: "rant"})
	reply, _ := store.AddReply(context.Background(), post.ID, ports.CreateReplyInput{Content: "reply"})

	// Privilege first.
	err := store.DeleteReply(context.Background(), post.ID, reply.ID, noAdminClaim)
	if err == nil || err.Error() != "Only administrators can delete replies" {
		t.Fatalf("got %v, want the privilege error", err)
	}

	// Then post existence.
	err = store.DeleteReply(context.Background(), 999, reply.ID, adminClaim)
	if err == nil || err.Error() != "Post not found" {
		t.Fatalf("got %v, want post not found", err)
	}

	// Then reply existence.
	err = store.DeleteReply(context.Background(), post.ID, 999, adminClaim)
	if err == nil || err.Error() != "Reply not found" {
		t.Fatalf("got %v, want reply not found", err)
	}

	if err := store.DeleteReply(context.Background(), post.ID, reply.ID, adminClaim); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(store.List(context.Background())[0].Replies); got != 0 {
		t.Fatalf("expected 0 replies, got %d", got)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	store := newPostStore()

	post, _ := store.Create(context.Background(), ports.CreatePostInput{Content: "rant"})
	_, _ = store.AddReply(context.Background(), post.ID, ports.CreateReplyInput{Content: "reply"})

	snapshot := store.List(context.Background())
	snapshot[0].Replies[0].Content = "mutated"

	if store.List(context.Background())[0].Replies[0].Content != "reply" {
		t.Fatal("mutating a snapshot must not affect the store")
	}
}
