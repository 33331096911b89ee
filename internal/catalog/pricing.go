package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/drivethru/internal/domain"
)

// basePrices holds the per-category starting price. Unknown categories
// fall back to defaultBasePrice.
var basePrices = map[string]decimal.Decimal{
	"Featured Favorites":        decimal.NewFromFloat(5.99),
	"Breakfast":                 decimal.NewFromFloat(4.99),
	"Burgers":                   decimal.NewFromFloat(5.49),
	"Chicken & Fish Sandwiches": decimal.NewFromFloat(5.99),
	"McNuggets":                 decimal.NewFromFloat(4.99),
	"Fries & Sides":             decimal.NewFromFloat(2.99),
	"Happy Meal":                decimal.NewFromFloat(4.49),
	"McCafé Coffees":            decimal.NewFromFloat(3.99),
	"Sweets & Treats":           decimal.NewFromFloat(2.99),
	"Beverages":                 decimal.NewFromFloat(1.99),
}

var defaultBasePrice = decimal.NewFromFloat(4.99)

// BasePrice returns the starting price for a category.
func BasePrice(category string) decimal.Decimal {
	if p, ok := basePrices[category]; ok {
		return p
	}
	return defaultBasePrice
}

// descriptionFormats maps a category to its blurb template. The single
// %s is the item name.
var descriptionFormats = map[string]string{
	"Burgers":                   "A delicious %s with fresh ingredients",
	"Breakfast":                 "A satisfying %s to start your day",
	"Beverages":                 "Refreshing %s",
	"Sweets & Treats":           "Sweet and tasty %s",
	"McCafé Coffees":            "Premium %s made with quality ingredients",
	"Fries & Sides":             "Crispy and golden %s",
	"Chicken & Fish Sandwiches": "Tender and flavorful %s",
	"McNuggets":                 "Tender and juicy %s",
	"Happy Meal":                "Fun %s for kids",
	"Featured Favorites":        "Popular %s that customers love",
}

// describe builds the item blurb for a name/category pair.
func describe(name, category string) string {
	if format, ok := descriptionFormats[category]; ok {
		return fmt.Sprintf(format, name)
	}
	return fmt.Sprintf("Tasty %s", name)
}

// sizedCategories lists the categories whose items come in the standard
// three sizes. Everything else is unsized.
var sizedCategories = map[string]bool{
	"Beverages":      true,
	"McCafé Coffees": true,
	"Fries & Sides":  true,
}

// sizesFor returns the orderable sizes for a category, nil if unsized.
func sizesFor(category string) []domain.Size {
	if !sizedCategories[category] {
		return nil
	}
	return []domain.Size{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge}
}
