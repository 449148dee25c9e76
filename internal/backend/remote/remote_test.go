package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

func TestListPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/posts" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id": 1, "author": "alice", "content": "rant", "image": null, "replies": []}]`))
	}))
	defer srv.Close()

	store := New(srv.URL)
	posts, err := store.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 || posts[0].Author != "alice" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}

func TestCreatePostSendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["content"] != "rant" {
			t.Errorf("unexpected body: %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 5, "author": "alice", "content": "rant"}`))
	}))
	defer srv.Close()

	store := New(srv.URL)
	post, err := store.CreatePost(context.Background(), ports.CreatePostInput{Author: "alice", Content: "rant"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != 5 {
		t.Fatalf("got id %d, want 5", post.ID)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		status  int
		kind    error
		message string
	}{
		{http.StatusBadRequest, domain.ErrValidation, "Post content is required"},
		{http.StatusUnauthorized, domain.ErrInvalidCredentials, "Invalid email or password"},
		{http.StatusForbidden, domain.ErrForbidden, "Only administrators can delete posts"},
		{http.StatusNotFound, domain.ErrNotFound, "Post not found"},
		{http.StatusInternalServerError, domain.ErrUpstreamUnavailable, "internal server error"},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": tc.message})
		}))

		store := New(srv.URL)
		err := store.DeletePost(context.Background(), 1, domain.Claim{})
		srv.Close()

		if !errors.Is(err, tc.kind) {
			t.Fatalf("status %d: got %v, want kind %v", tc.status, err, tc.kind)
		}
		if err.Error() != tc.message {
			t.Fatalf("status %d: got message %q, want %q", tc.status, err.Error(), tc.message)
		}
	}
}

func TestErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store := New(srv.URL)
	err := store.DeletePost(context.Background(), 1, domain.Claim{IsAdmin: true})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
	if err.Error() != http.StatusText(http.StatusNotFound) {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestUnreachableServer(t *testing.T) {
	store := New("http://127.0.0.1:1")

	_, err := store.ListPosts(context.Background())
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream kind, got %v", err)
	}
}

func TestListAgentsUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": 200, "data": [{"uuid": "u1", "displayName": "Jett"}]}`))
	}))
	defer srv.Close()

	store := New(srv.URL)
	agents, err := store.ListAgents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agents) != 1 || agents[0].DisplayName != "Jett" {
		t.Fatalf("unexpected agents: %+v", agents)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "Admin login successful!", "user": {"username": "Admin", "email": "admin@gmail.com", "isAdmin": true}}`))
	}))
	defer srv.Close()

	store := New(srv.URL)
	session, err := store.Login(context.Background(), "admin@gmail.com", "access")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session == nil || !session.IsAdmin {
		t.Fatalf("unexpected session: %+v", session)
	}
}
