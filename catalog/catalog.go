// Package catalog owns the product list: the fixed seed menu, admin adds
// and edits, and lookups for the cart.
package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/Ricardo-1112/shuiba-order/ids"
	"github.com/Ricardo-1112/shuiba-order/models"
	"github.com/Ricardo-1112/shuiba-order/pkg/logger"
	"github.com/Ricardo-1112/shuiba-order/store"
)

var (
	ErrNotFound        = errors.New("产品不存在")
	ErrPrivilegeDenied = errors.New("仅管理员可访问")
)

// defaultProducts is installed on first run, before any admin edits.
var defaultProducts = []models.Product{
	{ID: "b1", Name: "奶油面包", Category: "面包", Price: 8, Hot: true},
	{ID: "b2", Name: "肉松面包", Category: "面包", Price: 9},
	{ID: "d1", Name: "珍珠奶茶", Category: "饮品", Price: 12, Hot: true},
	{ID: "d2", Name: "美式咖啡", Category: "饮品", Price: 10},
	{ID: "n1", Name: "新品抹茶蛋糕", Category: "面包", Price: 15, New: true},
}

// Catalog is the product store. Admin-added products go to the front of
// the list; the seed keeps its own order behind them.
type Catalog struct {
	mu       sync.RWMutex
	store    store.Store
	logger   *logger.Logger
	products []models.Product
}

// New loads the persisted product list.
func New(st store.Store, log *logger.Logger) (*Catalog, error) {
	c := &Catalog{
		store:  st,
		logger: log.WithComponent("catalog"),
	}
	if err := st.Load(store.CollectionProducts, &c.products); err != nil {
		return nil, err
	}
	return c, nil
}

// SeedIfEmpty installs the default menu on first run and persists it.
// Subsequent runs see a non-empty collection and leave it alone.
func (c *Catalog) SeedIfEmpty() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.products) > 0 {
		return nil
	}
	seeded := make([]models.Product, len(defaultProducts))
	for i, p := range defaultProducts {
		p.Img = Placeholder(p.Name)
		seeded[i] = p
	}
	c.products = seeded
	if err := c.store.Save(store.CollectionProducts, c.products); err != nil {
		return err
	}
	c.logger.Info("Seeded default catalog", "count", len(seeded))
	return nil
}

// AddPayload carries the fields an admin supplies for a new product.
type AddPayload struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Img      string  `json:"img"`
	Hot      bool    `json:"hot"`
	New      bool    `json:"isNew"`
}

// Add creates a product and prepends it to the list. Missing images get a
// generated placeholder. Admin only; the route gate is not trusted alone.
func (c *Catalog) Add(actor *models.Session, payload AddPayload) (*models.Product, error) {
	if actor == nil || !actor.IsAdmin {
		return nil, ErrPrivilegeDenied
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := models.Product{
		ID:       ids.New("p"),
		Name:     payload.Name,
		Category: payload.Category,
		Price:    payload.Price,
		Img:      payload.Img,
		Hot:      payload.Hot,
		New:      payload.New,
	}
	if p.Img == "" {
		p.Img = Placeholder(p.Name)
	}
	c.products = append([]models.Product{p}, c.products...)
	if err := c.store.Save(store.CollectionProducts, c.products); err != nil {
		return nil, err
	}
	c.logger.Info("Product added", "product_id", p.ID, "name", p.Name)
	return &p, nil
}

// UpdatePayload is a partial product edit; nil fields stay untouched.
type UpdatePayload struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Img      *string  `json:"img"`
	Hot      *bool    `json:"hot"`
	New      *bool    `json:"isNew"`
}

// UpdateByID merges the patch onto the matching product and persists.
// An unknown id is a silent no-op. Admin only.
func (c *Catalog) UpdateByID(actor *models.Session, id string, patch UpdatePayload) error {
	if actor == nil || !actor.IsAdmin {
		return ErrPrivilegeDenied
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		p := &c.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Img != nil {
			p.Img = *patch.Img
		}
		if patch.Hot != nil {
			p.Hot = *patch.Hot
		}
		if patch.New != nil {
			p.New = *patch.New
		}
		return c.store.Save(store.CollectionProducts, c.products)
	}
	return nil
}

// List returns a copy of the current products, newest admin-added first.
func (c *Catalog) List() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// GetByID returns the product with the given id.
func (c *Catalog) GetByID(id string) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Placeholder builds an inline SVG data URI carrying the product name, for
// products added without an image.
func Placeholder(text string) string {
	svg := fmt.Sprintf(
		"<svg xmlns='http://www.w3.org/2000/svg' width='400' height='300'>"+
			"<rect width='100%%' height='100%%' fill='#f3f4f6'/>"+
			"<text x='50%%' y='50%%' dominant-baseline='middle' text-anchor='middle' fill='#9ca3af' font-size='24'>%s</text>"+
			"</svg>", text)
	return "data:image/svg+xml;charset=UTF-8," + url.PathEscape(svg)
}
