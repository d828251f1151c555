package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationEqual(t *testing.T) {
	tests := []struct {
		name string
		a    domain.Configuration
		b    domain.Configuration
		want bool
	}{
		{
			name: "same flat set, different pick order: equal",
			a:    domain.FlatConfiguration("Salame", "Tomate"),
			b:    domain.FlatConfiguration("Tomate", "Salame"),
			want: true,
		},
		{
			name: "same slot, different pick order: equal",
			a:    domain.BundleConfiguration([]string{"Salame", "Tomate"}),
			b:    domain.BundleConfiguration([]string{"Tomate", "Salame"}),
			want: true,
		},
		{
			name: "same sets on swapped slots: not equal",
			a:    domain.BundleConfiguration([]string{"Salame"}, []string{"Carne"}),
			b:    domain.BundleConfiguration([]string{"Carne"}, []string{"Salame"}),
			want: false,
		},
		{
			name: "different ingredient: not equal",
			a:    domain.BundleConfiguration([]string{"Salame", "Tomate"}),
			b:    domain.BundleConfiguration([]string{"Carne"}),
			want: false,
		},
		{
			name: "flat vs single-slot bundle: not equal",
			a:    domain.FlatConfiguration("Salame"),
			b:    domain.BundleConfiguration([]string{"Salame"}),
			want: false,
		},
		{
			name: "both empty: equal",
			a:    domain.Configuration{},
			b:    domain.Configuration{},
			want: true,
		},
		{
			name: "different slot counts: not equal",
			a:    domain.BundleConfiguration([]string{"Salame"}),
			b:    domain.BundleConfiguration([]string{"Salame"}, []string{"Salame"}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestConfigurationNormalizeDoesNotMutate(t *testing.T) {
	original := domain.BundleConfiguration([]string{"Tomate", "Salame"})

	normalized := original.Normalize()

	assert.Equal(t, []string{"Tomate", "Salame"}, original.Slots[0])
	assert.Equal(t, []string{"Salame", "Tomate"}, normalized.Slots[0])
}

func TestConfigurationCloneIsIndependent(t *testing.T) {
	original := domain.BundleConfiguration([]string{"Salame", "Tomate"}, []string{"Carne"})

	clone := original.Clone()
	clone.Slots[0][0] = "Piña"
	clone.Slots[1] = append(clone.Slots[1], "Tocino")

	assert.Equal(t, []string{"Salame", "Tomate"}, original.Slots[0])
	assert.Equal(t, []string{"Carne"}, original.Slots[1])

	flat := domain.FlatConfiguration("Salame")
	flatClone := flat.Clone()
	flatClone.Ingredients[0] = "Piña"
	assert.Equal(t, []string{"Salame"}, flat.Ingredients)
}

func TestCartLineSubtotal(t *testing.T) {
	line := domain.CartLine{
		ID:        uuid.New(),
		ItemID:    "promo-1-3ing",
		UnitPrice: domain.CLP(9990),
		Quantity:  3,
	}

	assert.True(t, domain.CLP(29970).Equal(line.Subtotal()))
}

func TestMoneyDisplay(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{500, "$500"},
		{9990, "$9.990"},
		{19980, "$19.980"},
		{1259970, "$1.259.970"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.CLP(tt.amount).Display())
	}
}

func TestMoneyAddCurrencyMismatch(t *testing.T) {
	var other domain.Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"10","currency":"USD"}`), &other))

	_, err := domain.CLP(100).Add(other)
	require.ErrorContains(t, err, "currency mismatch")
}

func TestCartLineJSONRoundTrip(t *testing.T) {
	line := domain.CartLine{
		ID:        uuid.New(),
		ItemID:    "promo-2rocker",
		Name:      "2 Rocker Pizza's",
		Category:  domain.CategoryPromos,
		UnitPrice: domain.CLP(17990),
		Config:    domain.BundleConfiguration([]string{"Carne", "Salame"}, []string{"Tomate"}),
		Quantity:  2,
	}

	data, err := json.Marshal(line)
	require.NoError(t, err)

	var decoded domain.CartLine
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, line.ID, decoded.ID)
	assert.Equal(t, line.ItemID, decoded.ItemID)
	assert.Equal(t, line.Quantity, decoded.Quantity)
	assert.True(t, line.UnitPrice.Equal(decoded.UnitPrice))
	assert.True(t, line.Config.Equal(decoded.Config))
}
