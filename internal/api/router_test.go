package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/valo-rant/community-api/internal/auth"
	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/service"
	"github.com/valo-rant/community-api/internal/store/memory"
)

// stubCatalog satisfies both catalog ports without touching the network.
type stubCatalog struct {
	agents []domain.Agent
	err    error
}

func (s *stubCatalog) ListAgents(_ context.Context) ([]domain.Agent, error) {
	return s.agents, s.err
}

func (s *stubCatalog) FetchAgents(_ context.Context) ([]domain.Agent, error) {
	return s.agents, s.err
}

func (s *stubCatalog) Ping(_ context.Context) error { return s.err }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	policy := auth.ClaimPolicy{}
	catalog := &stubCatalog{agents: []domain.Agent{
		{UUID: "u1", DisplayName: "Jett", IsPlayableCharacter: true},
	}}

	e := NewRouter(Dependencies{
		Logger:        zerolog.Nop(),
		Identity:      service.NewIdentityService(memory.NewUserStore(), service.Base64Codec{}, zerolog.Nop()),
		Posts:         memory.NewPostStore(policy),
		Patches:       memory.NewPatchStore(policy, memory.DefaultPatches()),
		Catalog:       catalog,
		CatalogClient: catalog,
		Metrics:       prometheus.NewRegistry(),
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestRegisterAndLoginFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22","confirm":"hunter22"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: got status %d, body %v", resp.StatusCode, body)
	}
	if body["message"] != "Registration successful!" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	user := body["user"].(map[string]any)
	if user["username"] != "alice" {
		t.Fatalf("unexpected user: %v", user)
	}
	if _, leaked := user["isAdmin"]; leaked {
		t.Fatal("registration response must not carry the admin flag")
	}

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login",
		`{"email":"alice@example.com","password":"hunter22"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: got status %d, body %v", resp.StatusCode, body)
	}
	if body["message"] != "Login successful!" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["user"].(map[string]any)["isAdmin"] != false {
		t.Fatal("expected a non-admin session")
	}
}

func TestRegisterDuplicateIs400(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"username":"alice","email":"alice@example.com","password":"hunter22","confirm":"hunter22"}`
	doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", payload)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}
	if body["error"] != "This email or username is already registered" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestAdminLogin(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login",
		`{"email":"admin@gmail.com","password":"access"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, body %v", resp.StatusCode, body)
	}
	if body["message"] != "Admin login successful!" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["user"].(map[string]any)["isAdmin"] != true {
		t.Fatal("expected an admin session")
	}
}

func TestBadLoginIs401(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login",
		`{"email":"nobody@example.com","password":"wrong12"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", resp.StatusCode)
	}
	if body["error"] != "Invalid email or password" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestRantBoardLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Create a post.
	resp, post := doJSON(t, http.MethodPost, srv.URL+"/api/posts",
		`{"author":"alice","content":"Jett mains, explain yourselves"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: got status %d, body %v", resp.StatusCode, post)
	}
	postID := int64(post["id"].(float64))
	if post["image"] != nil {
		t.Fatal("expected image to serialise as null")
	}

	// Missing content is a 400 with the exact message.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/posts", `{"author":"bob"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}
	if body["error"] != "Post content is required" {
		t.Fatalf("unexpected error: %v", body["error"])
	}

	// Reply to the post.
	resp, reply := doJSON(t, http.MethodPost, srv.URL+"/api/posts/"+itoa(postID)+"/reply",
		`{"author":"bob","content":"agreed"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("reply: got status %d, body %v", resp.StatusCode, reply)
	}
	replyID := int64(reply["id"].(float64))

	// Non-admin delete is refused before any existence check.
	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/api/posts/"+itoa(postID),
		`{"isAdmin":false}`)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", resp.StatusCode)
	}
	if body["error"] != "Only administrators can delete posts" {
		t.Fatalf("unexpected error: %v", body["error"])
	}

	// Admin reply delete.
	resp, body = doJSON(t, http.MethodDelete,
		srv.URL+"/api/posts/"+itoa(postID)+"/reply/"+itoa(replyID), `{"isAdmin":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, body %v", resp.StatusCode, body)
	}
	if body["message"] != "Reply deleted" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	// Admin post delete.
	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/api/posts/"+itoa(postID),
		`{"isAdmin":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, body %v", resp.StatusCode, body)
	}
	if body["message"] != "Post deleted" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	// Board is empty again.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/posts", nil)
	listResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer listResp.Body.Close()
	var posts []any
	_ = json.NewDecoder(listResp.Body).Decode(&posts)
	if len(posts) != 0 {
		t.Fatalf("expected an empty board, got %d posts", len(posts))
	}
}

func TestDeleteWithMalformedIDIs404ForAdmins(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodDelete, srv.URL+"/api/posts/abc", `{"isAdmin":true}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", resp.StatusCode)
	}
	if body["error"] != "Post not found" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestPatchLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Unprivileged create with missing fields: privilege wins, 403.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/patches", `{"version":""}`)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", resp.StatusCode)
	}
	if body["error"] != "Only administrators can create patches" {
		t.Fatalf("unexpected error: %v", body["error"])
	}

	// Privileged create with missing fields: validation, 400.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/patches", `{"isAdmin":true}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}
	if body["error"] != "All fields are required" {
		t.Fatalf("unexpected error: %v", body["error"])
	}

	// Partial update of the seeded patch: only the named field changes.
	resp, patch := doJSON(t, http.MethodPut, srv.URL+"/api/patches/1",
		`{"version":"Patch 2.5.1","isAdmin":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, body %v", resp.StatusCode, patch)
	}
	if patch["version"] != "Patch 2.5.1" {
		t.Fatalf("unexpected version: %v", patch["version"])
	}
	if patch["date"] != "December 15, 2024" {
		t.Fatalf("date must be untouched: %v", patch["date"])
	}

	// Delete the seeded patch.
	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/api/patches/1", `{"isAdmin":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, body %v", resp.StatusCode, body)
	}
	if body["message"] != "Patch deleted" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/api/patches/1", `{"isAdmin":true}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", resp.StatusCode)
	}
	if body["error"] != "Patch not found" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestAgentsEnvelope(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/agents", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, body %v", resp.StatusCode, body)
	}
	if body["status"] != float64(200) {
		t.Fatalf("unexpected envelope status: %v", body["status"])
	}
	data := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected 1 agent, got %d", len(data))
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", "")
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("liveness: status %d, body %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/health/ready", "")
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("readiness: status %d, body %v", resp.StatusCode, body)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
