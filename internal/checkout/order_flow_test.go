package checkout_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CriisxD/rockerpizzaweb/internal/cart"
	"github.com/CriisxD/rockerpizzaweb/internal/catalog"
	"github.com/CriisxD/rockerpizzaweb/internal/checkout"
	"github.com/CriisxD/rockerpizzaweb/internal/configurator"
	"github.com/CriisxD/rockerpizzaweb/internal/domain"
	"github.com/CriisxD/rockerpizzaweb/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The whole storefront path: pick a promo from the catalog, configure its
// pizzas, add it to a persistent cart, check out over WhatsApp, then come
// back in a fresh session and find the cart intact.
func TestOrderFlow(t *testing.T) {
	ctx := t.Context()

	menu, err := catalog.Default()
	require.NoError(t, err)

	store, err := repository.NewFile(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, err)

	engine := cart.NewEngine(ctx, store, zap.NewNop())

	promo, ok := menu.Find("promo-2rocker")
	require.True(t, ok)

	sel, err := configurator.New(promo)
	require.NoError(t, err)

	sel.ToggleIngredient("Salame")
	sel.ToggleIngredient("Tomate")
	require.NoError(t, sel.SelectSlot(1))
	sel.ToggleIngredient("Carne")

	config, err := sel.Finalize()
	require.NoError(t, err)

	_, err = engine.AddItem(ctx, promo, config)
	require.NoError(t, err)

	bebida, ok := menu.Find("bebida-1.5")
	require.True(t, ok)

	_, err = engine.AddItem(ctx, bebida, domain.Configuration{})
	require.NoError(t, err)

	require.True(t, domain.CLP(20490).Equal(engine.Total()))

	var opened []string
	channel, err := checkout.NewWhatsApp(func(_ context.Context, link string) error {
		opened = append(opened, link)
		return nil
	})
	require.NoError(t, err)

	var f checkout.Formatter
	details := domain.DeliveryDetails{Name: "Cata", PaymentMethod: domain.PaymentCard}

	require.NoError(t, f.Checkout(ctx, engine, details, channel, checkout.DefaultDestination))

	require.Len(t, opened, 1)
	assert.True(t, strings.HasPrefix(opened[0], "https://wa.me/56989705094?text="))

	transcript, err := f.Transcript(engine, details)
	require.NoError(t, err)
	assert.Contains(t, transcript, "🍕 Pizza 1: Salame, Tomate")
	assert.Contains(t, transcript, "🍕 Pizza 2: Carne")
	assert.Contains(t, transcript, "*TOTAL: $20.490*")

	// a new session restores the same cart from storage
	restored := cart.NewEngine(ctx, store, zap.NewNop())
	assert.Len(t, restored.Lines(), 2)
	assert.True(t, engine.Total().Equal(restored.Total()))
}
