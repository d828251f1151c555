package domain

import (
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Configuration captures the ingredient choices made for a cart line.
// Exactly one form applies: Slots for items configured as a bundle of
// pizzas, Ingredients for the flat single-selection form. Unconfigured
// items carry the zero value.
type Configuration struct {
	Ingredients []string   `json:"ingredients,omitempty"`
	Slots       [][]string `json:"slots,omitempty"`
}

func FlatConfiguration(ingredients ...string) Configuration {
	return Configuration{Ingredients: ingredients}
}

func BundleConfiguration(slots ...[]string) Configuration {
	return Configuration{Slots: slots}
}

func (c Configuration) IsBundle() bool {
	return len(c.Slots) > 0
}

func (c Configuration) IsEmpty() bool {
	return len(c.Ingredients) == 0 && len(c.Slots) == 0
}

// Clone returns a copy sharing no backing arrays with the receiver.
func (c Configuration) Clone() Configuration {
	out := Configuration{}

	if len(c.Ingredients) > 0 {
		out.Ingredients = append([]string(nil), c.Ingredients...)
	}

	if len(c.Slots) > 0 {
		out.Slots = make([][]string, len(c.Slots))
		for i, slot := range c.Slots {
			out.Slots[i] = append([]string(nil), slot...)
		}
	}

	return out
}

// Normalize returns a copy with each ingredient set sorted. Slot order is
// left alone: which pizza holds which ingredients is significant, the
// order the customer tapped the ingredients in is not.
func (c Configuration) Normalize() Configuration {
	out := c.Clone()

	sort.Strings(out.Ingredients)
	for _, slot := range out.Slots {
		sort.Strings(slot)
	}

	return out
}

// Equal reports whether two configurations describe the same choices,
// ignoring the order ingredients were picked in within a set.
func (c Configuration) Equal(other Configuration) bool {
	a, b := c.Normalize(), other.Normalize()

	if !slices.Equal(a.Ingredients, b.Ingredients) {
		return false
	}

	if len(a.Slots) != len(b.Slots) {
		return false
	}
	for i := range a.Slots {
		if !slices.Equal(a.Slots[i], b.Slots[i]) {
			return false
		}
	}

	return true
}

// CartLine is one distinct configuration of a catalog item in the cart.
// Name, category and price are snapshots taken when the line was created,
// so later catalog edits do not rewrite carts already persisted.
type CartLine struct {
	ID        uuid.UUID     `json:"id"`
	ItemID    string        `json:"itemId"`
	Name      string        `json:"name"`
	Category  Category      `json:"category"`
	UnitPrice Money         `json:"price"`
	Config    Configuration `json:"configuration"`
	Quantity  int64         `json:"quantity"`
}

func (l CartLine) Subtotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Matches reports whether an addition of item with config should merge
// into this line rather than open a new one.
func (l CartLine) Matches(itemID string, config Configuration) bool {
	return l.ItemID == itemID && l.Config.Equal(config)
}
