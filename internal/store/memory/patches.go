package memory

import (
	"context"
	"sync"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// DefaultPatches returns the seed content every fresh store starts with.
func DefaultPatches() []domain.Patch {
	return []domain.Patch{
		{ID: 1, Version: "Patch 2.5.0", Date: "December 15, 2024", Text: "New Features\n- New Gun"},
	}
}

// PatchStore keeps patch-notes entries in insertion order. Every mutation is
// admin-gated; the privilege check precedes validation and existence.
type PatchStore struct {
	mu      sync.RWMutex
	patches []domain.Patch
	ids     *idSource
	policy  ports.AuthorizationPolicy
}

func NewPatchStore(policy ports.AuthorizationPolicy, seed []domain.Patch) *PatchStore {
	s := &PatchStore{ids: newIDSource(), policy: policy}
	s.patches = append(s.patches, seed...)
	return s
}

func (s *PatchStore) List(_ context.Context) []domain.Patch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Patch, len(s.patches))
	copy(out, s.patches)
	return out
}

func (s *PatchStore) Create(_ context.Context, input ports.CreatePatchInput, claim domain.Claim) (domain.Patch, error) {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.Patch{}, domain.E(domain.ErrForbidden, "Only administrators can create patches")
	}
	if input.Version == "" || input.Date == "" || input.Text == "" {
		return domain.Patch{}, domain.E(domain.ErrValidation, "All fields are required")
	}

	patch := domain.Patch{
		ID:      s.ids.next(),
		Version: input.Version,
		Date:    input.Date,
		Text:    input.Text,
	}

	s.mu.Lock()
	s.patches = append(s.patches, patch)
	s.mu.Unlock()

	return patch, nil
}

// Update merges only the fields present in the input; a nil or empty field
// leaves the stored value untouched. The id never changes.
func (s *PatchStore) Update(_ context.Context, id int64, input ports.UpdatePatchInput, claim domain.Claim) (domain.Patch, error) {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.Patch{}, domain.E(domain.ErrForbidden, "Only administrators can edit patches")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.patches {
		if s.patches[i].ID != id {
			continue
		}
		if input.Version != nil && *input.Version != "" {
			s.patches[i].Version = *input.Version
		}
		if input.Date != nil && *input.Date != "" {
			s.patches[i].Date = *input.Date
		}
		if input.Text != nil && *input.Text != "" {
			s.patches[i].Text = *input.Text
		}
		return s.patches[i], nil
	}
	return domain.Patch{}, domain.E(domain.ErrNotFound, "Patch not found")
}

func (s *PatchStore) Delete(_ context.Context, id int64, claim domain.Claim) error {
	if err := s.policy.Authorize(claim); err != nil {
		return domain.E(domain.ErrForbidden, "Only administrators can delete patches")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.patches {
		if p.ID == id {
			s.patches = append(s.patches[:i], s.patches[i+1:]...)
			return nil
		}
	}
	return domain.E(domain.ErrNotFound, "Patch not found")
}
