package game

import (
	"math/rand"
	"sync"

	"sketchparty/internal/logger"
)

const (
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	codeLength   = 4
)

// Registry maps room codes to live rooms. The lock only covers code
// allocation and table membership; gameplay never goes through it.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	words WordProvider
}

func NewRegistry(words WordProvider) *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
		words: words,
	}
}

// Create allocates a code unique among live rooms and registers a fresh
// room under it, regenerating on collision.
func (g *Registry) Create() *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := generateCode()
	for _, taken := g.rooms[code]; taken; _, taken = g.rooms[code] {
		code = generateCode()
	}
	room := NewRoom(code, g, g.words)
	g.rooms[code] = room
	logger.Infof("[Registry] Room %s created. Live rooms: %d", code, len(g.rooms))
	return room
}

func (g *Registry) Get(code string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	room, ok := g.rooms[code]
	return room, ok
}

// RemoveRoom satisfies RoomParent; rooms call it once their roster
// empties. Removal is by identity, not code: once a room is gone its code
// may be reallocated, and a late removal from the old room must not evict
// the new tenant.
func (g *Registry) RemoveRoom(room *Room) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rooms[room.code] != room {
		return
	}
	delete(g.rooms, room.code)
	logger.Infof("[Registry] Room %s removed. Live rooms: %d", room.code, len(g.rooms))
}

func (g *Registry) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

func generateCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(code)
}
