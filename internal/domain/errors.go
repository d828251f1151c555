package domain

import "errors"

// Recoverable conditions surfaced to the caller. None of these are fatal:
// the UI reports them and the customer keeps going.
var (
	// ErrNotConfigurable: ingredient configuration was attempted on an
	// item that has no ingredient menu.
	ErrNotConfigurable = errors.New("item has no ingredient menu")

	// ErrSlotOutOfRange: a pizza slot index outside [0, bundle size).
	ErrSlotOutOfRange = errors.New("pizza slot index out of range")

	// ErrIncompleteSelection: finalizing a bundle while some pizza still
	// has no ingredients.
	ErrIncompleteSelection = errors.New("every pizza needs at least one ingredient")

	// ErrEmptyCart: checkout on a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
)
