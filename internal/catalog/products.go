package catalog

import "github.com/CriisxD/rockerpizzaweb/internal/domain"

var rockerIngredients = []string{
	"Salame",
	"Aceituna",
	"Carne",
	"Tomate",
	"Doble queso",
	"Pepperoni",
	"Maíz",
	"Camarón",
	"Pimentón",
	"Champiñon",
	"Choricillo",
	"Pollo crispy",
	"Pollo",
	"Piña",
	"Palmitos",
	"Tocino",
}

// Default is the Rocker Pizza menu.
func Default() (*Catalog, error) {
	return Load([]domain.CatalogItem{
		{
			ID:             "promo-1-3ing",
			Name:           "1 Pizza 3 Ingredientes",
			Description:    "Arma tu Rocker con hasta 3 ingredientes a elección.",
			Price:          domain.CLP(9990),
			Category:       domain.CategoryPromos,
			Popular:        true,
			IngredientMenu: rockerIngredients,
			BundleSize:     1,
			MaxIngredients: 3,
		},
		{
			ID:             "promo-1-5ing",
			Name:           "1 Pizza 5 Ingredientes",
			Description:    "Arma tu Rocker con hasta 5 ingredientes a elección.",
			Price:          domain.CLP(11990),
			Category:       domain.CategoryPromos,
			IngredientMenu: rockerIngredients,
			BundleSize:     1,
			MaxIngredients: 5,
		},
		{
			ID:             "promo-2rocker",
			Name:           "2 Rocker Pizza's",
			Description:    "2 Pizzas Familiares con 3 ingredientes cada una.",
			Price:          domain.CLP(17990),
			Category:       domain.CategoryPromos,
			Popular:        true,
			IngredientMenu: rockerIngredients,
			BundleSize:     2,
			MaxIngredients: 3,
		},
		{
			ID:             "promo-3rocker",
			Name:           "3 ROCKER PIZZA'S",
			Description:    "3 Pizzas Familiares con 3 ingredientes cada una.",
			Price:          domain.CLP(25990),
			Category:       domain.CategoryPromos,
			Popular:        true,
			IngredientMenu: rockerIngredients,
			BundleSize:     3,
			MaxIngredients: 3,
		},
		{
			ID:          "bebida-1.5",
			Name:        "Bebida 1.5L",
			Description: "Coca-Cola, Fanta, Sprite",
			Price:       domain.CLP(2500),
			Category:    domain.CategoryBebidas,
		},
		{
			ID:          "bebida-lata",
			Name:        "Bebida Lata",
			Description: "Coca-Cola, Fanta, Sprite",
			Price:       domain.CLP(1500),
			Category:    domain.CategoryBebidas,
		},
	})
}
