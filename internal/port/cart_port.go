package port

import (
	"context"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
)

// CartStore persists the full cart line list. Load returns (nil, nil)
// when nothing has been saved yet; the engine treats any error the same
// way, a corrupted cart must never block ordering.
type CartStore interface {
	Load(ctx context.Context) ([]domain.CartLine, error)
	Save(ctx context.Context, lines []domain.CartLine) error
}
