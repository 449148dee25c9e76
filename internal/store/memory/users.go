package memory

import (
	"context"
	"sync"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// UserStore keeps registered accounts in insertion order. Matching is exact
// string equality, no normalisation.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) List(_ context.Context) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserStore) Create(_ context.Context, user domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
	return user, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *UserStore) Taken(_ context.Context, username, email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email || u.Username == username {
			return true
		}
	}
	return false
}
