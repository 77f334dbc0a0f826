package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
)

// MemoryStore tracks revoked token ids in process memory. Entries are
// dropped lazily once the token they belong to would have expired anyway,
// so the map never outgrows the set of live refresh tokens.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewMemoryStore creates a new in-memory RevocationStore implementation
func NewMemoryStore() auth.RevocationStore {
	return &MemoryStore{revoked: make(map[string]time.Time)}
}

func (s *MemoryStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	// Expired tokens fail verification on their own
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	_, revoked := s.revoked[jti]
	return revoked, nil
}

// sweep removes entries whose expiry has passed. Callers must hold the lock.
func (s *MemoryStore) sweep() {
	now := time.Now()
	for jti, expiry := range s.revoked {
		if expiry.Before(now) {
			delete(s.revoked, jti)
		}
	}
}
