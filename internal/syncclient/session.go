package syncclient

import (
	"context"
	"encoding/json"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// SessionKey is the key the session descriptor is persisted under.
const SessionKey = "currentUser"

// SessionCache persists the client-held session descriptor in the opaque
// key-value store. Absent or malformed entries read as no session.
type SessionCache struct {
	kv ports.KeyValueStore
}

func NewSessionCache(kv ports.KeyValueStore) *SessionCache {
	return &SessionCache{kv: kv}
}

// Load returns the cached session, or nil when none is stored or the stored
// value does not parse.
func (s *SessionCache) Load(ctx context.Context) *domain.Session {
	raw, err := s.kv.Get(ctx, SessionKey)
	if err != nil || raw == "" {
		return nil
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil
	}
	return &session
}

func (s *SessionCache) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, SessionKey, string(raw))
}

// Clear logs the user out.
func (s *SessionCache) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, SessionKey)
}
