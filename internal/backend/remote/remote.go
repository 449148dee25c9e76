// Package remote implements the sync-client backend interfaces against the
// community API over HTTP. Server-side messages pass through unchanged so the
// pages show exactly what the server said.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Store talks to a running community API server.
type Store struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Store {
	return &Store{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// errorBody is the envelope the server's error handler writes.
type errorBody struct {
	Error string `json:"error"`
}

func (s *Store) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.E(domain.ErrUpstreamUnavailable, "Failed to reach server")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return s.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError maps an HTTP failure back to the domain error kind the server
// derived it from, keeping the server's message intact.
func (s *Store) decodeError(resp *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)
	message := body.Error
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return domain.E(domain.ErrValidation, message)
	case http.StatusUnauthorized:
		return domain.E(domain.ErrInvalidCredentials, message)
	case http.StatusForbidden:
		return domain.E(domain.ErrForbidden, message)
	case http.StatusNotFound:
		return domain.E(domain.ErrNotFound, message)
	default:
		return domain.E(domain.ErrUpstreamUnavailable, message)
	}
}

// --- Agents ---

type agentsEnvelope struct {
	Status int            `json:"status"`
	Data   []domain.Agent `json:"data"`
	Error  string         `json:"error"`
}

func (s *Store) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	var env agentsEnvelope
	if err := s.doRequest(ctx, http.MethodGet, "/api/agents", nil, &env); err != nil {
		return nil, err
	}
	if env.Status != http.StatusOK {
		message := env.Error
		if message == "" {
			message = "Failed to fetch agents"
		}
		return nil, domain.E(domain.ErrUpstreamUnavailable, message)
	}
	return env.Data, nil
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionEnvelope struct {
	Message string          `json:"message"`
	User    *domain.Session `json:"user"`
}

func (s *Store) Register(ctx context.Context, input ports.RegisterInput) (*domain.Session, error) {
	var env sessionEnvelope
	err := s.doRequest(ctx, http.MethodPost, "/api/auth/register", registerRequest{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Confirm:  input.Confirm,
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (s *Store) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var env sessionEnvelope
	err := s.doRequest(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

// --- Rant board ---

type createPostRequest struct {
	Author  string  `json:"author"`
	Content string  `json:"content"`
	Image   *string `json:"image"`
}

type createReplyRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type claimRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

func (s *Store) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := s.doRequest(ctx, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) CreatePost(ctx context.Context, input ports.CreatePostInput) (domain.Post, error) {
	var post domain.Post
	err := s.doRequest(ctx, http.MethodPost, "/api/posts", createPostRequest{
		Author:  input.Author,
		Content: input.Content,
		Image:   input.Image,
	}, &post)
	return post, err
}

func (s *Store) DeletePost(ctx context.Context, id int64, claim domain.Claim) error {
	path := fmt.Sprintf("/api/posts/%d", id)
	return s.doRequest(ctx, http.MethodDelete, path, claimRequest{IsAdmin: claim.IsAdmin}, nil)
}

func (s *Store) AddReply(ctx context.Context, postID int64, input ports.CreateReplyInput) (domain.Reply, error) {
	var reply domain.Reply
	path := fmt.Sprintf("/api/posts/%d/reply", postID)
	err := s.doRequest(ctx, http.MethodPost, path, createReplyRequest{
		Author:  input.Author,
		Content: input.Content,
	}, &reply)
	return reply, err
}

func (s *Store) DeleteReply(ctx context.Context, postID, replyID int64, claim domain.Claim) error {
	path := fmt.Sprintf("/api/posts/%d/reply/%d", postID, replyID)
	return s.doRequest(ctx, http.MethodDelete, path, claimRequest{IsAdmin: claim.IsAdmin}, nil)
}

// --- Patch notes ---

type createPatchRequest struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Text    string `json:"text"`
	IsAdmin bool   `json:"isAdmin"`
}

type updatePatchRequest struct {
	Version *string `json:"version,omitempty"`
	Date    *string `json:"date,omitempty"`
	Text    *string `json:"text,omitempty"`
	IsAdmin bool    `json:"isAdmin"`
}

func (s *Store) ListPatches(ctx context.Context) ([]domain.Patch, error) {
	var patches []domain.Patch
	if err := s.doRequest(ctx, http.MethodGet, "/api/patches", nil, &patches); err != nil {
		return nil, err
	}
	return patches, nil
}

func (s *Store) CreatePatch(ctx context.Context, input ports.CreatePatchInput, claim domain.Claim) (domain.Patch, error) {
	var patch domain.Patch
	err := s.doRequest(ctx, http.MethodPost, "/api/patches", createPatchRequest{
		Version: input.Version,
		Date:    input.Date,
		Text:    input.Text,
		IsAdmin: claim.IsAdmin,
	}, &patch)
	return patch, err
}

func (s *Store) UpdatePatch(ctx context.Context, id int64, input ports.UpdatePatchInput, claim domain.Claim) (domain.Patch, error) {
	var patch domain.Patch
	path := fmt.Sprintf("/api/patches/%d", id)
	err := s.doRequest(ctx, http.MethodPut, path, updatePatchRequest{
		Version: input.Version,
		Date:    input.Date,
		Text:    input.Text,
		IsAdmin: claim.IsAdmin,
	}, &patch)
	return patch, err
}

func (s *Store) DeletePatch(ctx context.Context, id int64, claim domain.Claim) error {
	path := fmt.Sprintf("/api/patches/%d", id)
	return s.doRequest(ctx, http.MethodDelete, path, claimRequest{IsAdmin: claim.IsAdmin}, nil)
}
