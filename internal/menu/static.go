// Package menu provides MenuSource implementations: a live HTTP source
// that extracts the menu from the public menu page, and a built-in
// static snapshot for offline runs and tests.
package menu

import (
	"context"

	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/logger"
)

// Compile-time interface check.
var _ domain.MenuSource = (*StaticSource)(nil)

// Categories is the fixed set of menu headings, in display order. The
// HTTP source only extracts sections under these headings; the static
// source serves every one of them.
var Categories = []string{
	"Featured Favorites",
	"Breakfast",
	"Burgers",
	"Chicken & Fish Sandwiches",
	"McNuggets",
	"Fries & Sides",
	"Happy Meal",
	"McCafé Coffees",
	"Sweets & Treats",
	"Beverages",
}

// StaticSource serves a built-in menu snapshot. It never fails.
type StaticSource struct {
	log *logger.Logger
}

// NewStaticSource creates the built-in menu source.
func NewStaticSource(log *logger.Logger) *StaticSource {
	return &StaticSource{log: log}
}

// Fetch returns the snapshot, category order matching Categories.
func (s *StaticSource) Fetch(ctx context.Context) ([]domain.RawCategory, error) {
	s.log.Debug("serving static menu snapshot")
	return staticMenu(), nil
}

// staticMenu rebuilds the snapshot on each call so callers can't reach
// back and mutate a shared copy.
func staticMenu() []domain.RawCategory {
	return []domain.RawCategory{
		{Name: "Featured Favorites", Items: []string{
			"Big Mac",
			"Quarter Pounder with Cheese",
			"10 piece Chicken McNuggets",
			"World Famous Fries",
		}},
		{Name: "Breakfast", Items: []string{
			"Egg McMuffin",
			"Sausage McMuffin with Egg",
			"Sausage Biscuit with Egg",
			"Bacon, Egg & Cheese Biscuit",
			"Hash Browns",
			"Hotcakes",
		}},
		{Name: "Burgers", Items: []string{
			"Big Mac",
			"Quarter Pounder with Cheese",
			"Double Quarter Pounder with Cheese",
			"McDouble",
			"Cheeseburger",
			"Hamburger",
		}},
		{Name: "Chicken & Fish Sandwiches", Items: []string{
			"McChicken",
			"Spicy McChicken",
			"Deluxe McCrispy",
			"Filet-O-Fish",
		}},
		{Name: "McNuggets", Items: []string{
			"4 piece Chicken McNuggets",
			"6 piece Chicken McNuggets",
			"10 piece Chicken McNuggets",
			"20 piece Chicken McNuggets",
		}},
		{Name: "Fries & Sides", Items: []string{
			"World Famous Fries",
			"Apple Slices",
			"Side Salad",
		}},
		{Name: "Happy Meal", Items: []string{
			"Hamburger Happy Meal",
			"4 piece Chicken McNuggets Happy Meal",
			"6 piece Chicken McNuggets Happy Meal",
		}},
		{Name: "McCafé Coffees", Items: []string{
			"McCafé Premium Roast Coffee",
			"McCafé Iced Coffee",
			"McCafé Caramel Macchiato",
			"McCafé Mocha",
		}},
		{Name: "Sweets & Treats", Items: []string{
			"Vanilla Cone",
			"McFlurry with OREO Cookies",
			"Hot Fudge Sundae",
			"Baked Apple Pie",
			"Chocolate Chip Cookie",
		}},
		{Name: "Beverages", Items: []string{
			"Coca-Cola",
			"Sprite",
			"Fanta Orange",
			"Sweet Tea",
			"1% Low Fat Milk Jug",
			"Reduced Sugar Low Fat Chocolate Milk Jug",
		}},
	}
}
