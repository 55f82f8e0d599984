// Package location keeps the last geographic coordinate each chat has shared.
// The registry lives for the lifetime of the process and is never persisted.
package location

import (
	"strconv"
	"sync"
)

// Coordinate is a latitude/longitude pair as reported by the chat client.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String renders the coordinate as "lat, lon" using the shortest
// representation that round-trips, e.g. "55.75, 37.62".
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Store defines the operations handlers need on the location registry.
// Implementations must be safe for concurrent use; Get and Set cannot fail.
type Store interface {
	// Get returns the coordinate last stored for the chat, and false when
	// the chat has never shared a location.
	Get(chatID int64) (Coordinate, bool)

	// Set replaces the chat's coordinate. The write is complete when Set returns.
	Set(chatID int64, coord Coordinate)

	// Len returns the number of chats with a known location.
	Len() int
}

// memoryStore is a Store backed by a map guarded by a reader/writer lock.
// Entries are never evicted.
type memoryStore struct {
	mu     sync.RWMutex
	coords map[int64]Coordinate
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{coords: make(map[int64]Coordinate)}
}

func (s *memoryStore) Get(chatID int64) (Coordinate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.coords[chatID]
	return c, ok
}

func (s *memoryStore) Set(chatID int64, coord Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coords[chatID] = coord
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.coords)
}
