package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldwidesim/esim-store/internal/model"
)

func TestSessionStore(t *testing.T) {
	t.Run("set get clear", func(t *testing.T) {
		store := NewSessionStore(time.Hour)

		_, ok := store.Get(1)
		assert.False(t, ok)

		store.Set(1, model.SelectingCountry{RegionKey: "asia"})
		state, ok := store.Get(1)
		require.True(t, ok)
		assert.Equal(t, model.SelectingCountry{RegionKey: "asia"}, state)

		store.Clear(1)
		_, ok = store.Get(1)
		assert.False(t, ok)
	})

	t.Run("users are isolated", func(t *testing.T) {
		store := NewSessionStore(time.Hour)
		store.Set(1, model.SelectingCountry{RegionKey: "asia"})
		store.Set(2, model.SelectingCountry{RegionKey: "europe"})

		state, ok := store.Get(2)
		require.True(t, ok)
		assert.Equal(t, model.SelectingCountry{RegionKey: "europe"}, state)
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		store := NewSessionStore(20 * time.Millisecond)
		store.Set(1, model.SelectingCountry{RegionKey: "asia"})

		time.Sleep(50 * time.Millisecond)
		_, ok := store.Get(1)
		assert.False(t, ok)
	})

	t.Run("later set replaces the state", func(t *testing.T) {
		store := NewSessionStore(time.Hour)
		store.Set(1, model.SelectingCountry{RegionKey: "asia"})
		store.Set(1, model.SelectingPackage{Country: model.Country{Name: "Japan", Code: "JP"}})

		state, ok := store.Get(1)
		require.True(t, ok)
		assert.IsType(t, model.SelectingPackage{}, state)
	})
}
