// Package syncclient implements the state-and-render synchronization pattern
// shared by the three interactive pages: hold a working copy of a remote
// collection, derive views from it locally, push mutations upstream, and
// re-fetch the whole collection after every successful write.
package syncclient

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// State is the client's position in the fetch cycle.
type State int

const (
	// StateIdle: a working copy is held and no request is in flight.
	StateIdle State = iota
	// StateFetching: a refresh is in flight; further triggers are rejected.
	StateFetching
	// StateError: the last refresh failed; the prior working copy was
	// discarded and Err carries the failure for the error view.
	StateError
)

var (
	// ErrSyncBusy is returned when a refresh is triggered while another is
	// still in flight.
	ErrSyncBusy = errors.New("refresh already in flight")
	// ErrNotAdmin is the client-side gate on admin-only mutations; it fires
	// before any request is issued.
	ErrNotAdmin = errors.New("administrator privileges required")
)

// ListFunc fetches a full collection snapshot.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// Client is the reusable sync component, instantiated once per page domain.
// All methods are safe for concurrent use.
type Client[T any] struct {
	mu      sync.Mutex
	list    ListFunc[T]
	working []T
	state   State
	lastErr error
	gen     uint64
	session *domain.Session
	logger  zerolog.Logger
}

func New[T any](list ListFunc[T], logger zerolog.Logger) *Client[T] {
	return &Client[T]{list: list, logger: logger}
}

// Refresh replaces the working copy wholesale with a fresh snapshot. On
// failure the prior copy is discarded and the client enters StateError; the
// next user-initiated Refresh is the only retry path.
func (c *Client[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateFetching {
		c.mu.Unlock()
		return ErrSyncBusy
	}
	c.state = StateFetching
	gen := c.gen
	c.mu.Unlock()

	items, err := c.list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// Reset happened while the request was in flight; the response
		// belongs to a page that no longer exists.
		return nil
	}

	if err != nil {
		c.working = nil
		c.state = StateError
		c.lastErr = err
		c.logger.Error().Err(err).Msg("refresh failed")
		return err
	}

	c.working = items
	c.state = StateIdle
	c.lastErr = nil
	return nil
}

// Reset abandons any in-flight fetch and clears all state, as when the page
// hosting the client is torn down. A response arriving afterwards is
// discarded, not applied.
func (c *Client[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.working = nil
	c.state = StateIdle
	c.lastErr = nil
}

// WorkingCopy returns the last successfully fetched snapshot.
func (c *Client[T]) WorkingCopy() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.working))
	copy(out, c.working)
	return out
}

// ApplyLocalFilter derives a view from the working copy without re-fetching.
func (c *Client[T]) ApplyLocalFilter(keep func(T) bool) []T {
	c.mu.Lock()
	snapshot := c.working
	c.mu.Unlock()

	out := make([]T, 0, len(snapshot))
	for _, item := range snapshot {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// State returns the current fetch-cycle state.
func (c *Client[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the failure that put the client into StateError, or nil.
func (c *Client[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// SetSession caches the session descriptor consulted by MutateAdmin.
func (c *Client[T]) SetSession(s *domain.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

// Session returns the cached session descriptor, if any.
func (c *Client[T]) Session() *domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Mutate issues a write and, on success, refreshes unconditionally so the
// rendered view always reflects server state (consistency over latency).
// Mutations are not serialized: two rapid calls can interleave their writes
// before either refresh runs, and the last refresh wins.
func (c *Client[T]) Mutate(ctx context.Context, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// MutateAdmin gates op on the cached session's admin flag before issuing the
// request. The request itself still carries the flag for the server-side
// check; both checks are part of the contract.
func (c *Client[T]) MutateAdmin(ctx context.Context, op func(ctx context.Context) error) error {
	s := c.Session()
	if s == nil || !s.IsAdmin {
		return ErrNotAdmin
	}
	return c.Mutate(ctx, op)
}
