package location

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetUnknown(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	_, ok := s.Get(42)
	require.False(t, ok)
	require.Equal(t, 0, s.Len())
}

func TestMemoryStoreReadYourOwnWrite(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	want := Coordinate{Latitude: 55.75, Longitude: 37.62}
	s.Set(42, want)

	got, ok := s.Get(42)
	require.True(t, ok)
	require.Equal(t, want, got)

	_, ok = s.Get(43)
	require.False(t, ok, "other chats stay unknown")
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	s.Set(7, Coordinate{Latitude: 1, Longitude: 2})
	s.Set(7, Coordinate{Latitude: 3, Longitude: 4})

	got, ok := s.Get(7)
	require.True(t, ok)
	require.Equal(t, Coordinate{Latitude: 3, Longitude: 4}, got)
	require.Equal(t, 1, s.Len())
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	const chats = 64

	var wg sync.WaitGroup
	for i := range chats {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			s.Set(id, Coordinate{Latitude: float64(id), Longitude: -float64(id)})
		}(int64(i))
		go func(id int64) {
			defer wg.Done()
			if c, ok := s.Get(id); ok {
				// A reader never observes a half-written coordinate.
				assert.Equal(t, -c.Latitude, c.Longitude)
			}
		}(int64(i))
	}
	wg.Wait()

	require.Equal(t, chats, s.Len())
	for i := range chats {
		c, ok := s.Get(int64(i))
		require.True(t, ok)
		require.Equal(t, float64(i), c.Latitude)
	}
}

func TestCoordinateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		coord Coordinate
		want  string
	}{
		{"short decimals", Coordinate{Latitude: 55.75, Longitude: 37.62}, "55.75, 37.62"},
		{"integers", Coordinate{Latitude: 10, Longitude: -20}, "10, -20"},
		{"long decimals", Coordinate{Latitude: 59.938784, Longitude: 30.314997}, "59.938784, 30.314997"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.coord.String())
		})
	}
}
