// internal/store/memory.go
//
// In-memory implementation of the Store interface used by the companion
// server. Games live only as long as the process; nothing is written to disk.
//
// Characteristics:
//   - Stores *game.Hosted objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors wrap ErrNotFound for missing game IDs.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robalobadob/mastermind/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for hosted games.
type Store interface {
	// Save persists or updates a game.
	Save(ctx context.Context, g *game.Hosted) error

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*game.Hosted, error)

	// Delete removes a game by ID.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex            // guards games map
	games map[string]*game.Hosted // keyed by Hosted.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Hosted)}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Hosted) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Hosted, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("game %q: %w", id, ErrNotFound)
}

// Delete drops a game; deleting an unknown ID reports ErrNotFound.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("game %q: %w", id, ErrNotFound)
	}
	delete(m.games, id)
	return nil
}
