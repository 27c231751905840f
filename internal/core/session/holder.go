// Package session holds the client-side current session: one process-wide
// value initialised at login and cleared on logout or expiry, replacing
// scattered ambient reads of stored identity.
package session

import (
	"sync"
	"time"

	"github.com/cgpe/repopa/internal/core/domain"
)

// Holder owns the current session for the lifetime of the process.
// The zero value is usable and starts anonymous.
type Holder struct {
	mu   sync.RWMutex
	sess *domain.Session
	now  func() time.Time
}

func NewHolder() *Holder {
	return &Holder{now: time.Now}
}

// Set installs the session issued at login.
func (h *Holder) Set(s *domain.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sess = s
}

// Current returns the held session, or nil when anonymous or expired.
// An expired session is dropped on read so the holder transitions back to
// anonymous without an explicit logout.
func (h *Holder) Current() *domain.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sess == nil {
		return nil
	}
	if h.sess.Expired(h.clock()()) {
		h.sess = nil
		return nil
	}
	return h.sess
}

// Clear drops the session (logout).
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sess = nil
}

func (h *Holder) clock() func() time.Time {
	if h.now == nil {
		return time.Now
	}
	return h.now
}
