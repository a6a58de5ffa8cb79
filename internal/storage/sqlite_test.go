package storage

import (
	"context"
	"path/filepath"
	"testing"

	"curio-box/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := NewSQLiteStore(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	items := []model.Item{
		{ID: "i1", Name: "Candle", Business: "Wick Works", Category: model.CategoryLifestyle, Description: "Soy candle."},
		{ID: "i2", Name: "Print", Business: "Corner Canvas", Category: model.CategoryArt, Description: "Mural print."},
	}
	require.NoError(t, s.Save(ctx, ItemsSlot, items))

	var loaded []model.Item
	ok, err := s.Load(ctx, ItemsSlot, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, items, loaded)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Save(ctx, ItemsSlot, []model.Item{{ID: "old"}}))
	require.NoError(t, s.Save(ctx, ItemsSlot, []model.Item{{ID: "new"}}))

	var loaded []model.Item
	ok, err := s.Load(ctx, ItemsSlot, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded, 1)
	assert.Equal(t, "new", loaded[0].ID)
}

func TestSQLiteStore_LoadAbsentSlot(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	var loaded []model.Item
	ok, err := s.Load(ctx, "missing-slot", &loaded)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, loaded)
}

func TestSQLiteStore_MalformedPayloadTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	// Write a payload that is valid JSON but the wrong shape.
	require.NoError(t, s.Save(ctx, OrdersSlot, map[string]string{"not": "an array"}))

	var loaded []model.Order
	ok, err := s.Load(ctx, OrdersSlot, &loaded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Save(ctx, OrdersSlot, []model.Order{{ID: "o1", Status: model.OrderPending}}))
	require.NoError(t, s.Clear(ctx, OrdersSlot))

	var loaded []model.Order
	ok, err := s.Load(ctx, OrdersSlot, &loaded)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an absent slot is fine.
	require.NoError(t, s.Clear(ctx, OrdersSlot))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := NewSQLiteStore(path, zerolog.Nop())
	require.NoError(t, err)
	orders := []model.Order{{ID: "o1", Status: model.OrderPending, Sections: []model.Section{{RequestedCategory: model.CategorySurprise}}}}
	require.NoError(t, s.Save(ctx, OrdersSlot, orders))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	var loaded []model.Order
	ok, err := reopened.Load(ctx, OrdersSlot, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, orders, loaded)
}
