// Package session provides the opaque identifier that scopes a cart to one
// anonymous browsing session.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const storageKey = "stylehub_session_id"

// Store is the session-scoped storage the provider persists into. Its
// lifetime defines the session: clearing the store ends the session.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Provider hands out the session identifier. It is constructed explicitly
// and owned by the composition root rather than living as package state.
type Provider struct {
	store Store
}

func NewProvider(store Store) *Provider {
	return &Provider{store: store}
}

// GetOrCreate returns the session identifier, generating and persisting one
// on first use. Generation cannot fail; every later call within the same
// session returns the same value.
func (p *Provider) GetOrCreate() string {
	if id, ok := p.store.Get(storageKey); ok && id != "" {
		return id
	}
	id := newSessionID()
	p.store.Set(storageKey, id)
	return id
}

func newSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), randomSuffix(6))
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// Entropy exhaustion is effectively unreachable, but the contract
		// says generation never fails.
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:2*n]
	}
	return hex.EncodeToString(b)
}
