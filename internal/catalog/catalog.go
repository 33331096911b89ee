// Package catalog builds the purchasable-item catalog from the raw
// category lists a menu source delivers. A build is a pure function of
// its input: ids, prices, descriptions, and size sets all derive
// deterministically from the category and the running item counter, so
// two builds over the same raw entries produce identical catalogs.
package catalog

import (
	"fmt"
	"hash/fnv"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/drivethru/internal/domain"
)

// Compile-time interface check.
var _ domain.ItemLookup = (*Catalog)(nil)

// Category is one named group of items in insertion order.
type Category struct {
	Name  string
	Items []*domain.Item
}

// Catalog holds one self-consistent build of the menu: categories in the
// order the source delivered them, plus an id index for direct lookup.
// A Catalog is immutable after Build returns; refreshing means building
// a new one and swapping it in whole.
type Catalog struct {
	categories []Category
	index      map[string]*domain.Item
}

// JitterFunc derives a price offset in [0, 2) from an item id.
type JitterFunc func(id string) decimal.Decimal

// Option configures a catalog build.
type Option func(*builder)

// WithJitter replaces the default deterministic price jitter.
func WithJitter(fn JitterFunc) Option {
	return func(b *builder) { b.jitter = fn }
}

type builder struct {
	jitter JitterFunc
}

// Build constructs a catalog from raw category entries. Empty or nil
// input yields an empty catalog, never an error -- callers must tolerate
// a menu with zero items.
func Build(raw []domain.RawCategory, opts ...Option) *Catalog {
	b := &builder{jitter: defaultJitter}
	for _, opt := range opts {
		opt(b)
	}

	cat := &Catalog{index: make(map[string]*domain.Item)}
	counter := 0
	for _, rc := range raw {
		group := Category{Name: rc.Name}
		for _, name := range rc.Items {
			if name == "" {
				continue
			}
			counter++
			item := b.buildItem(name, rc.Name, counter)
			group.Items = append(group.Items, item)
			cat.index[item.ID] = item
		}
		if len(group.Items) > 0 {
			cat.categories = append(cat.categories, group)
		}
	}
	return cat
}

// buildItem assembles one item record. The id is the category
// abbreviation plus the build-wide counter, unique within one build.
func (b *builder) buildItem(name, category string, counter int) *domain.Item {
	id := fmt.Sprintf("%s_%d", abbreviate(category), counter)
	price := BasePrice(category).Add(b.jitter(id)).Round(2)
	prompt := variantPrompt(name)

	return &domain.Item{
		ID:            id,
		Name:          name,
		Description:   describe(name, category),
		Price:         price,
		Category:      category,
		Sizes:         sizesFor(category),
		Available:     true,
		NeedsVariant:  prompt != "",
		VariantPrompt: prompt,
	}
}

// abbreviate takes the first three runes of a category name.
func abbreviate(category string) string {
	runes := []rune(category)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}

// defaultJitter hashes the item id into an offset with exactly two
// decimals in [0.00, 1.99]. A pure function of the id, so rebuilding
// the same menu prices it identically.
func defaultJitter(id string) decimal.Decimal {
	h := fnv.New64a()
	h.Write([]byte(id))
	cents := h.Sum64() % 200
	return decimal.New(int64(cents), -2)
}

// Categories returns the catalog groups in insertion order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Item returns the item with the given id.
func (c *Catalog) Item(id string) (*domain.Item, bool) {
	item, ok := c.index[id]
	return item, ok
}

// Items returns every item in catalog iteration order: categories in
// insertion order, items in order within each. The resolver's tie-break
// depends on this ordering being stable.
func (c *Catalog) Items() []*domain.Item {
	var out []*domain.Item
	for _, group := range c.categories {
		out = append(out, group.Items...)
	}
	return out
}

// Len returns the total item count.
func (c *Catalog) Len() int {
	return len(c.index)
}
