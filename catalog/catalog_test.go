package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ricardo-1112/shuiba-order/catalog"
	"github.com/Ricardo-1112/shuiba-order/models"
	"github.com/Ricardo-1112/shuiba-order/pkg/logger"
	"github.com/Ricardo-1112/shuiba-order/store"
)

var testLogger = logger.New(logger.Config{Level: logger.LevelError, Format: "text"})

func newCatalog(t *testing.T) (*catalog.Catalog, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore()
	c, err := catalog.New(st, testLogger)
	require.NoError(t, err)
	return c, st
}

func admin() *models.Session {
	return &models.Session{UserID: "admin", Email: "admin@shuiba.local", IsAdmin: true}
}

func TestSeedIfEmpty(t *testing.T) {
	c, st := newCatalog(t)

	require.NoError(t, c.SeedIfEmpty())
	products := c.List()
	require.Len(t, products, 5)
	assert.Equal(t, "奶油面包", products[0].Name)
	for _, p := range products {
		assert.True(t, strings.HasPrefix(p.Img, "data:image/svg+xml"), "seed products get placeholder images")
	}

	// Seeding twice never duplicates.
	require.NoError(t, c.SeedIfEmpty())
	assert.Len(t, c.List(), 5)

	// The seed is durable, and a reloaded catalog does not reseed.
	reloaded, err := catalog.New(st, testLogger)
	require.NoError(t, err)
	require.NoError(t, reloaded.SeedIfEmpty())
	assert.Len(t, reloaded.List(), 5)
}

func TestAddRequiresAdmin(t *testing.T) {
	c, _ := newCatalog(t)

	_, err := c.Add(&models.Session{Email: "a@x.com"}, catalog.AddPayload{Name: "柠檬茶", Category: "饮品", Price: 6})
	assert.ErrorIs(t, err, catalog.ErrPrivilegeDenied)
	_, err = c.Add(nil, catalog.AddPayload{Name: "柠檬茶", Category: "饮品", Price: 6})
	assert.ErrorIs(t, err, catalog.ErrPrivilegeDenied)
}

func TestAddPrependsWithDefaults(t *testing.T) {
	c, _ := newCatalog(t)
	require.NoError(t, c.SeedIfEmpty())

	p, err := c.Add(admin(), catalog.AddPayload{Name: "柠檬茶", Category: "饮品", Price: 6})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.ID, "p_"))
	assert.False(t, p.Hot)
	assert.True(t, strings.HasPrefix(p.Img, "data:image/svg+xml"), "missing image defaults to a placeholder")

	products := c.List()
	require.Len(t, products, 6)
	assert.Equal(t, p.ID, products[0].ID, "admin-added products come first")
}

func TestAddKeepsSuppliedImage(t *testing.T) {
	c, _ := newCatalog(t)

	p, err := c.Add(admin(), catalog.AddPayload{Name: "柠檬茶", Category: "饮品", Price: 6, Img: "https://img.example/tea.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/tea.png", p.Img)
}

func TestUpdateByID(t *testing.T) {
	c, st := newCatalog(t)
	require.NoError(t, c.SeedIfEmpty())

	hot := true
	price := 13.5
	require.NoError(t, c.UpdateByID(admin(), "d1", catalog.UpdatePayload{Hot: &hot, Price: &price}))

	p, err := c.GetByID("d1")
	require.NoError(t, err)
	assert.True(t, p.Hot)
	assert.Equal(t, 13.5, p.Price)
	assert.Equal(t, "珍珠奶茶", p.Name, "untouched fields survive the patch")

	// Durable after the patch.
	reloaded, err := catalog.New(st, testLogger)
	require.NoError(t, err)
	p, err = reloaded.GetByID("d1")
	require.NoError(t, err)
	assert.Equal(t, 13.5, p.Price)
}

func TestUpdateByIDUnknownIsNoop(t *testing.T) {
	c, _ := newCatalog(t)
	require.NoError(t, c.SeedIfEmpty())

	name := "幽灵产品"
	require.NoError(t, c.UpdateByID(admin(), "p_missing", catalog.UpdatePayload{Name: &name}))
	assert.Len(t, c.List(), 5)
}

func TestUpdateByIDRequiresAdmin(t *testing.T) {
	c, _ := newCatalog(t)
	hot := true
	err := c.UpdateByID(&models.Session{Email: "a@x.com"}, "d1", catalog.UpdatePayload{Hot: &hot})
	assert.ErrorIs(t, err, catalog.ErrPrivilegeDenied)
}

func TestGetByID(t *testing.T) {
	c, _ := newCatalog(t)
	require.NoError(t, c.SeedIfEmpty())

	p, err := c.GetByID("b1")
	require.NoError(t, err)
	assert.Equal(t, "奶油面包", p.Name)

	_, err = c.GetByID("nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
