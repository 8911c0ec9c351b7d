package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ricardo-1112/shuiba-order/cart"
	"github.com/Ricardo-1112/shuiba-order/models"
	"github.com/Ricardo-1112/shuiba-order/pkg/logger"
	"github.com/Ricardo-1112/shuiba-order/store"
)

var testLogger = logger.New(logger.Config{Level: logger.LevelError, Format: "text"})

func newEngine(t *testing.T) (*cart.Engine, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore()
	e, err := cart.New(st, testLogger)
	require.NoError(t, err)
	return e, st
}

func product(id, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Category: "饮品", Price: price}
}

func TestAddMergesDuplicateProduct(t *testing.T) {
	e, _ := newEngine(t)
	milkTea := product("d1", "珍珠奶茶", 12)

	require.NoError(t, e.Add("a@x.com", milkTea))
	require.NoError(t, e.Add("a@x.com", milkTea))

	lines := e.Lines("a@x.com")
	require.Len(t, lines, 1)
	assert.Equal(t, "d1", lines[0].ID)
	assert.Equal(t, 2, lines[0].Qty)
}

func TestAddAppendsNewLinesInOrder(t *testing.T) {
	e, _ := newEngine(t)
	bread := product("b1", "奶油面包", 8)
	coffee := product("d2", "美式咖啡", 10)

	require.NoError(t, e.Add("a@x.com", bread))
	require.NoError(t, e.Add("a@x.com", coffee))
	require.NoError(t, e.Add("a@x.com", bread))

	lines := e.Lines("a@x.com")
	require.Len(t, lines, 2)
	assert.Equal(t, "b1", lines[0].ID)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, "d2", lines[1].ID)
	assert.Equal(t, 1, lines[1].Qty)
}

func TestChangeQtyClampsAtOne(t *testing.T) {
	e, _ := newEngine(t)
	bread := product("b1", "奶油面包", 8)

	require.NoError(t, e.Add("a@x.com", bread))
	require.NoError(t, e.ChangeQty("a@x.com", "b1", 2)) // qty 3
	require.NoError(t, e.ChangeQty("a@x.com", "b1", -100))

	lines := e.Lines("a@x.com")
	require.Len(t, lines, 1, "clamping must never remove the line")
	assert.Equal(t, 1, lines[0].Qty)
}

func TestChangeQtyUnknownProductIsNoop(t *testing.T) {
	e, _ := newEngine(t)
	require.NoError(t, e.ChangeQty("a@x.com", "nope", 5))
	assert.Empty(t, e.Lines("a@x.com"))
}

func TestRemove(t *testing.T) {
	e, _ := newEngine(t)
	require.NoError(t, e.Add("a@x.com", product("b1", "奶油面包", 8)))
	require.NoError(t, e.Add("a@x.com", product("d1", "珍珠奶茶", 12)))

	require.NoError(t, e.Remove("a@x.com", "b1"))
	lines := e.Lines("a@x.com")
	require.Len(t, lines, 1)
	assert.Equal(t, "d1", lines[0].ID)

	// Removing something absent changes nothing.
	require.NoError(t, e.Remove("a@x.com", "b1"))
	assert.Len(t, e.Lines("a@x.com"), 1)
}

func TestTotal(t *testing.T) {
	e, _ := newEngine(t)
	require.NoError(t, e.Add("a@x.com", product("b1", "奶油面包", 8)))
	require.NoError(t, e.ChangeQty("a@x.com", "b1", 1)) // qty 2
	require.NoError(t, e.Add("a@x.com", product("d1", "珍珠奶茶", 12)))

	assert.Equal(t, 28.0, e.Total("a@x.com"))
}

func TestOwnersAreIsolated(t *testing.T) {
	e, _ := newEngine(t)
	require.NoError(t, e.Add("a@x.com", product("b1", "奶油面包", 8)))
	require.NoError(t, e.Add("b@x.com", product("d1", "珍珠奶茶", 12)))

	require.NoError(t, e.Clear("a@x.com"))

	assert.Empty(t, e.Lines("a@x.com"))
	assert.Zero(t, e.Total("a@x.com"))
	require.Len(t, e.Lines("b@x.com"), 1)
}

func TestLinesSurviveReload(t *testing.T) {
	e, st := newEngine(t)
	require.NoError(t, e.Add("a@x.com", product("b1", "奶油面包", 8)))
	require.NoError(t, e.ChangeQty("a@x.com", "b1", 2))

	reloaded, err := cart.New(st, testLogger)
	require.NoError(t, err)

	lines := reloaded.Lines("a@x.com")
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)
	assert.Equal(t, 24.0, reloaded.Total("a@x.com"))
}
