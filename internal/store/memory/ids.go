// Package memory holds the authoritative in-memory collection stores. Data is
// deliberately not persisted: every collection starts from its seed on process
// start. Each store carries its own mutex so the package is safe under Echo's
// concurrent request handling.
package memory

import (
	"sync"
	"time"
)

// idSource hands out unique ids derived from the wall clock in unix
// milliseconds, bumped when the clock has not advanced so ids stay strictly
// increasing. Numeric order therefore equals creation order.
type idSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDSource() *idSource {
	return &idSource{now: time.Now}
}

func (s *idSource) next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
