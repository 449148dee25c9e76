// Package catalog talks to the third-party character catalog over HTTP.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// DefaultBaseURL is the public catalog endpoint.
const DefaultBaseURL = "https://valorant-api.com"

const agentsPath = "/v1/agents?isPlayableCharacter=true"

// envelope is the catalog's response wrapper. The body carries its own status
// field in addition to the HTTP status line.
type envelope struct {
	Status int            `json:"status"`
	Data   []domain.Agent `json:"data"`
}

// Client fetches agents from the external catalog. Timeouts are the caller's
// responsibility (the catalog service bounds every call through the context).
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, http: &http.Client{}, logger: logger}
}

func (c *Client) FetchAgents(ctx context.Context) ([]domain.Agent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+agentsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.E(domain.ErrUpstreamUnavailable, "Failed to fetch agents")
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Error().Err(err).Msg("catalog response decode failed")
		return nil, domain.E(domain.ErrUpstreamUnavailable, "Server error fetching agents")
	}
	if env.Status != http.StatusOK {
		return nil, domain.E(domain.ErrUpstreamUnavailable, "Failed to fetch agents")
	}

	return env.Data, nil
}

// Ping reports catalog reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/version", nil)
	if err != nil {
		return fmt.Errorf("build catalog ping: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.E(domain.ErrUpstreamUnavailable, "Failed to fetch agents")
	}
	return nil
}

// transportError distinguishes a deadline hit from every other transport
// failure so callers can surface a Timeout kind.
func (c *Client) transportError(err error) error {
	var uerr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &uerr) && uerr.Timeout()) {
		return domain.E(domain.ErrTimeout, "Server error fetching agents")
	}
	c.logger.Error().Err(err).Msg("catalog request failed")
	return domain.E(domain.ErrUpstreamUnavailable, "Server error fetching agents")
}
