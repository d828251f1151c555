// Package cart owns the authoritative cart state: which configured lines
// exist, their quantities, and the merge rule deciding when two additions
// are the same line.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
	"github.com/CriisxD/rockerpizzaweb/internal/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Engine struct {
	mu     sync.Mutex
	store  port.CartStore
	logger *zap.Logger
	lines  []domain.CartLine
}

// NewEngine restores the persisted cart from store. A missing, corrupted
// or otherwise unreadable cart falls back to an empty one: a broken local
// cart must never stop the customer from ordering.
func NewEngine(ctx context.Context, store port.CartStore, logger *zap.Logger) *Engine {
	e := &Engine{
		store:  store,
		logger: logger,
	}

	lines, err := store.Load(ctx)
	if err != nil {
		logger.Warn("restoring persisted cart failed, starting empty", zap.Error(err))
		return e
	}

	for _, line := range lines {
		if line.ItemID == "" || line.Quantity < 1 {
			logger.Warn("persisted cart is malformed, starting empty",
				zap.String("line_id", line.ID.String()))
			return e
		}
	}

	e.lines = lines
	return e
}

// AddItem merges item into the cart. Two additions land on the same line
// iff the item ID matches and the configurations are equal once each
// ingredient set is sorted; slot order itself stays significant. A match
// bumps the existing line's quantity in place, anything else appends a
// fresh line with quantity 1.
func (e *Engine) AddItem(ctx context.Context, item domain.CatalogItem, config domain.Configuration) (domain.CartLine, error) {
	if !item.Configurable() && !config.IsEmpty() {
		return domain.CartLine{}, fmt.Errorf("item[%s] takes no configuration: %w", item.ID, domain.ErrNotConfigurable)
	}

	config = config.Normalize()

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].Matches(item.ID, config) {
			e.lines[i].Quantity++
			e.persist(ctx)
			return detach(e.lines[i]), nil
		}
	}

	line := domain.CartLine{
		ID:        uuid.New(),
		ItemID:    item.ID,
		Name:      item.Name,
		Category:  item.Category,
		UnitPrice: item.Price,
		Config:    config,
		Quantity:  1,
	}

	e.lines = append(e.lines, line)
	e.persist(ctx)

	return detach(line), nil
}

// ChangeQuantity applies delta to a line's quantity, clamped at zero.
// A line that reaches zero is removed outright. Unknown IDs are a no-op.
func (e *Engine) ChangeQuantity(ctx context.Context, lineID uuid.UUID, delta int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID != lineID {
			continue
		}

		quantity := e.lines[i].Quantity + delta
		if quantity <= 0 {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
		} else {
			e.lines[i].Quantity = quantity
		}

		e.persist(ctx)
		return
	}
}

// RemoveLine drops a line unconditionally. Unknown IDs are a no-op.
func (e *Engine) RemoveLine(ctx context.Context, lineID uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID == lineID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			e.persist(ctx)
			return
		}
	}
}

// Lines returns the cart in insertion order. Merges update a line in
// place, they never move it to the end. Returned lines are detached
// copies; mutating them cannot corrupt engine state.
func (e *Engine) Lines() []domain.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.CartLine, len(e.lines))
	for i, line := range e.lines {
		out[i] = detach(line)
	}
	return out
}

func detach(line domain.CartLine) domain.CartLine {
	line.Config = line.Config.Clone()
	return line
}

// Total sums unit price times quantity over all lines. The catalog is
// single-currency, so the sum never mixes units.
func (e *Engine) Total() domain.Money {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := domain.CLP(0)
	for _, line := range e.lines {
		sum, err := total.Add(line.Subtotal())
		if err != nil {
			e.logger.Warn("skipping line in total", zap.String("line_id", line.ID.String()), zap.Error(err))
			continue
		}
		total = sum
	}

	return total
}

// ItemCount is the badge number: the sum of quantities, not the number
// of lines.
func (e *Engine) ItemCount() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var count int64
	for _, line := range e.lines {
		count += line.Quantity
	}
	return count
}

// persist writes the full line list after every mutation. Failures are
// logged and swallowed; the in-memory cart stays the source of truth and
// a storage hiccup must not bounce back into the mutation path.
// Callers hold e.mu, so saves cannot interleave.
func (e *Engine) persist(ctx context.Context) {
	snapshot := append([]domain.CartLine(nil), e.lines...)

	if err := e.store.Save(ctx, snapshot); err != nil {
		e.logger.Warn("persisting cart failed", zap.Error(err))
	}
}
