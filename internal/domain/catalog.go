package domain

import "fmt"

type Category string

const (
	CategoryPromos  Category = "Promos"
	CategoryPizzas  Category = "Pizzas"
	CategoryBebidas Category = "Bebidas"
	CategoryPicoteo Category = "Picoteo"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPromos, CategoryPizzas, CategoryBebidas, CategoryPicoteo:
		return true
	}
	return false
}

// CatalogItem is one entry of the read-only product catalog. Items with a
// non-empty IngredientMenu must be configured before they can enter the
// cart; everything else is added as-is.
type CatalogItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       Money    `json:"price"`
	Category    Category `json:"category"`
	Popular     bool     `json:"popular,omitempty"`

	// IngredientMenu lists the candidate ingredients, in display order.
	IngredientMenu []string `json:"ingredientMenu,omitempty"`

	// BundleSize is the number of independently configured pizzas this
	// item represents. Always at least 1.
	BundleSize int `json:"bundleSize"`

	// MaxIngredients caps the ingredient count per pizza. Must be set
	// explicitly whenever IngredientMenu is non-empty; there is no
	// per-call-site fallback.
	MaxIngredients int `json:"maxIngredients,omitempty"`
}

func (i CatalogItem) Configurable() bool {
	return len(i.IngredientMenu) > 0
}

func (i CatalogItem) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item id is empty")
	}

	if i.Name == "" {
		return fmt.Errorf("item[%s]: name is empty", i.ID)
	}

	if i.Price.IsNegative() {
		return fmt.Errorf("item[%s]: price is negative", i.ID)
	}

	if !i.Category.Valid() {
		return fmt.Errorf("item[%s]: unknown category %q", i.ID, i.Category)
	}

	if i.BundleSize < 1 {
		return fmt.Errorf("item[%s]: bundle size %d, want at least 1", i.ID, i.BundleSize)
	}

	if i.Configurable() && i.MaxIngredients < 1 {
		return fmt.Errorf("item[%s]: has an ingredient menu but no ingredient cap", i.ID)
	}

	return nil
}
