// Package configurator holds the in-progress ingredient selection for a
// bundle while the customer builds it, one ingredient set per pizza slot.
package configurator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
)

type Selection struct {
	item       domain.CatalogItem
	activeSlot int
	slots      [][]string
}

// New opens a selection for item with every slot empty and the first
// slot active. Items without an ingredient menu cannot be configured and
// must go straight into the cart instead.
func New(item domain.CatalogItem) (*Selection, error) {
	if !item.Configurable() {
		return nil, fmt.Errorf("item[%s]: %w", item.ID, domain.ErrNotConfigurable)
	}

	return &Selection{
		item:  item,
		slots: make([][]string, item.BundleSize),
	}, nil
}

func (s *Selection) Item() domain.CatalogItem {
	return s.item
}

func (s *Selection) ActiveSlot() int {
	return s.activeSlot
}

func (s *Selection) SlotCount() int {
	return len(s.slots)
}

// SelectSlot switches which pizza the next toggles apply to.
func (s *Selection) SelectSlot(index int) error {
	if index < 0 || index >= len(s.slots) {
		return fmt.Errorf("slot %d of %d: %w", index, len(s.slots), domain.ErrSlotOutOfRange)
	}

	s.activeSlot = index
	return nil
}

// Slot returns a copy of the ingredient set chosen for one pizza.
func (s *Selection) Slot(index int) ([]string, error) {
	if index < 0 || index >= len(s.slots) {
		return nil, fmt.Errorf("slot %d of %d: %w", index, len(s.slots), domain.ErrSlotOutOfRange)
	}

	return append([]string(nil), s.slots[index]...), nil
}

// ToggleIngredient adds or removes name on the active slot. Removal is
// always allowed. Adding past the per-pizza cap is ignored rather than
// rejected: the customer tapped a disabled option, nothing happened.
func (s *Selection) ToggleIngredient(name string) {
	current := s.slots[s.activeSlot]

	if i := slices.Index(current, name); i >= 0 {
		s.slots[s.activeSlot] = slices.Delete(current, i, i+1)
		return
	}

	if len(current) >= s.item.MaxIngredients {
		return
	}

	s.slots[s.activeSlot] = append(current, name)
}

func (s *Selection) Selected(name string) bool {
	return slices.Contains(s.slots[s.activeSlot], name)
}

// IsComplete reports whether every pizza has at least one ingredient.
// The add-to-cart action stays disabled until it does.
func (s *Selection) IsComplete() bool {
	for _, slot := range s.slots {
		if len(slot) == 0 {
			return false
		}
	}
	return true
}

// Finalize hands the per-slot ingredient choices to the cart engine.
func (s *Selection) Finalize() (domain.Configuration, error) {
	if !s.IsComplete() {
		return domain.Configuration{}, domain.ErrIncompleteSelection
	}

	slots := make([][]string, len(s.slots))
	for i, slot := range s.slots {
		slots[i] = append([]string(nil), slot...)
	}

	return domain.BundleConfiguration(slots...), nil
}

// FilterMenu narrows the displayed ingredient candidates by a
// case-insensitive substring match. It never touches the slots;
// searching and selecting are independent.
func (s *Selection) FilterMenu(query string) []string {
	if query == "" {
		return append([]string(nil), s.item.IngredientMenu...)
	}

	query = strings.ToLower(query)

	var out []string
	for _, name := range s.item.IngredientMenu {
		if strings.Contains(strings.ToLower(name), query) {
			out = append(out, name)
		}
	}
	return out
}
