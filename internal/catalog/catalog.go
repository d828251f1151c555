package catalog

import (
	"fmt"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
)

// Catalog is the read-only, ordered product list the storefront serves
// from. Construct it through Load so every item is validated once, up
// front, instead of at point of use.
type Catalog struct {
	items []domain.CatalogItem
	byID  map[string]int
}

// Load validates the item list and builds the lookup index. It fails on
// the first invalid item, a duplicate ID, or an ingredient menu without
// an explicit per-pizza cap.
func Load(items []domain.CatalogItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]domain.CatalogItem, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for _, item := range items {
		if item.BundleSize == 0 {
			item.BundleSize = 1
		}

		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item.Validate: %w", err)
		}

		if _, ok := c.byID[item.ID]; ok {
			return nil, fmt.Errorf("duplicate item id %q", item.ID)
		}

		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

func (c *Catalog) Find(id string) (domain.CatalogItem, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.CatalogItem{}, false
	}
	return c.items[idx], true
}

// Items returns the catalog in its declared order.
func (c *Catalog) Items() []domain.CatalogItem {
	return append([]domain.CatalogItem(nil), c.items...)
}

// Categories returns the distinct categories in first-appearance order,
// the order the category tabs render in.
func (c *Catalog) Categories() []domain.Category {
	seen := make(map[domain.Category]bool, len(c.items))

	var out []domain.Category
	for _, item := range c.items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}

func (c *Catalog) ByCategory(category domain.Category) []domain.CatalogItem {
	var out []domain.CatalogItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
