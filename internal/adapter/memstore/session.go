package memstore

import (
	"sync"

	"github.com/crushcollection/storefront/internal/core/port"
)

var (
	_ port.Session         = (*Session)(nil)
	_ port.SessionProvider = (*SessionRegistry)(nil)
)

// Session bundles the per-visitor stores.
type Session struct {
	cart     *CartStore
	wishlist *WishlistStore
	filter   *FilterStore
}

func newSession() *Session {
	return &Session{
		cart:     NewCartStore(),
		wishlist: NewWishlistStore(),
		filter:   NewFilterStore(),
	}
}

func (s *Session) Cart() port.CartStore         { return s.cart }
func (s *Session) Wishlist() port.WishlistStore { return s.wishlist }
func (s *Session) Filter() port.FilterStore     { return s.filter }

// SessionRegistry creates sessions on first use. Sessions live for the
// process lifetime, nothing survives a restart.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

func (r *SessionRegistry) Session(sessionID string) port.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		s = newSession()
		r.sessions[sessionID] = s
	}
	return s
}
