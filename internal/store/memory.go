// apps/go-server/internal/store/memory.go
//
// In-memory game store.
// Games live for the lifetime of the process; nothing is persisted.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - The RWMutex guards the map only; each game serializes its own guesses.
//   - Entries are never removed.
//   - Get returns ErrNotFound for unknown IDs.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/apps/go-server/internal/game"
	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

// ErrNotFound is returned by Get when no game has the given ID.
var ErrNotFound = errors.New("not found")

// Store defines lookup and creation of game sessions.
type Store interface {
	// Create starts a new game and returns its ID.
	Create(ctx context.Context) string

	// Get retrieves a game by ID.
	// Mutations go through the returned pointer.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Len reports how many games are held.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	words words.Supplier
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store drawing words from ws.
func NewMemoryStore(ws words.Supplier) Store {
	return &memory{words: ws, games: make(map[string]*game.Game)}
}

// Create draws a word, builds the game and inserts it.
func (m *memory) Create(ctx context.Context) string {
	g := game.New(uuid.NewString(), m.words.Word())
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g.ID
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
