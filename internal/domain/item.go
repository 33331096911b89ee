// Package domain defines the core types and interfaces for the drive-thru
// assistant. All other packages depend on domain; domain depends on nothing.
package domain

import "github.com/shopspring/decimal"

// Size is an ordering size for items that come in more than one.
type Size int

const (
	// SizeNone means no size was given (or the item is unsized).
	SizeNone Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

// String returns the human-readable size name.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return ""
	}
}

// sizeNames maps lowercase size names to Size values.
var sizeNames = map[string]Size{
	"small":  SizeSmall,
	"medium": SizeMedium,
	"large":  SizeLarge,
}

// SizeFromString converts a size name to a Size.
// Returns SizeNone for unrecognized names.
func SizeFromString(name string) Size {
	if s, ok := sizeNames[name]; ok {
		return s
	}
	return SizeNone
}

// Item is a single purchasable menu item. Items are immutable once the
// catalog build that produced them returns.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	// Sizes lists the orderable sizes, nil for unsized items.
	Sizes []Size
	// Available marks the item as currently orderable.
	Available bool
	// NeedsVariant marks items that cannot be added without the customer
	// picking a specific variant first (e.g. which milk, which coffee).
	NeedsVariant bool
	// VariantPrompt is the question to ask when NeedsVariant is set.
	VariantPrompt string
}

// Sized reports whether the item must be ordered with a size.
func (it *Item) Sized() bool {
	return len(it.Sizes) > 0
}

// AllowsSize reports whether the given size is valid for this item.
// Unsized items allow only SizeNone.
func (it *Item) AllowsSize(s Size) bool {
	if !it.Sized() {
		return s == SizeNone
	}
	for _, allowed := range it.Sizes {
		if allowed == s {
			return true
		}
	}
	return false
}

// RawCategory is one menu category as delivered by a MenuSource: the
// category name plus the ordered raw item names under it. The catalog
// builder turns these into Items.
type RawCategory struct {
	Name  string
	Items []string
}

// ItemLookup resolves an item id to its catalog record. The catalog
// implements this; order mutation uses it so line totals are always
// computed from live catalog prices.
type ItemLookup interface {
	Item(id string) (*Item, bool)
}
