// Package resolver maps free-text item mentions onto catalog entries.
// "No match" is a first-class outcome here, never an error: a session
// keeps going whatever the customer mumbles at the speaker box.
package resolver

import (
	"strings"

	"github.com/hammamikhairi/drivethru/internal/catalog"
)

// Kind tags a resolution outcome.
type Kind int

const (
	// KindNotFound means the mention matched nothing in the catalog.
	KindNotFound Kind = iota
	// KindResolved means exactly one item was settled on.
	KindResolved
	// KindClarify means an item matched but needs a variant choice
	// before it may be ordered.
	KindClarify
)

// String returns a human-readable resolution kind.
func (k Kind) String() string {
	switch k {
	case KindResolved:
		return "resolved"
	case KindClarify:
		return "clarify"
	default:
		return "not_found"
	}
}

// Resolution is the outcome of resolving one mention.
type Resolution struct {
	Kind   Kind
	ItemID string
	// Prompt carries the clarifying question for KindClarify.
	Prompt string
}

// Resolve finds the catalog item a mention refers to.
//
// Query and candidate names are normalized identically, so "Big Mac Meal"
// and "big mac" compare equal. An exact normalized match wins outright.
// Failing that, every candidate where one normalized name contains the
// other is scored by shared token count and the best one wins; on a tie
// the candidate earliest in catalog iteration order is kept. That
// tie-break is deliberate -- menus lead with their flagship items.
//
// A resolved item that requires a variant choice is downgraded to a
// clarification regardless of how well it matched.
func Resolve(cat *catalog.Catalog, mention string) Resolution {
	query := normalize(mention)
	if query == "" {
		return Resolution{Kind: KindNotFound}
	}
	queryTokens := tokenSet(query)

	bestID := ""
	bestScore := 0
	for _, item := range cat.Items() {
		name := normalize(item.Name)

		if query == name {
			return finish(cat, item.ID)
		}

		if strings.Contains(name, query) || strings.Contains(query, name) {
			score := overlap(queryTokens, tokenSet(name))
			// Strictly greater keeps the earliest candidate on ties.
			if score > bestScore {
				bestScore = score
				bestID = item.ID
			}
		}
	}

	if bestID == "" {
		return Resolution{Kind: KindNotFound}
	}
	return finish(cat, bestID)
}

// finish applies the variant override before handing back a resolved id.
func finish(cat *catalog.Catalog, itemID string) Resolution {
	item, ok := cat.Item(itemID)
	if !ok {
		return Resolution{Kind: KindNotFound}
	}
	if item.NeedsVariant {
		return Resolution{Kind: KindClarify, ItemID: itemID, Prompt: item.VariantPrompt}
	}
	return Resolution{Kind: KindResolved, ItemID: itemID}
}

// normalize prepares a name or mention for comparison: lowercase,
// trimmed, "and"/"with" collapsed to the menu's own shorthand, and the
// "meal" suffix dropped so combo phrasing still lands on the item.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " and ", " & ")
	s = strings.ReplaceAll(s, " with ", " w/ ")
	s = strings.ReplaceAll(s, " meal", "")
	return strings.TrimSpace(s)
}

// tokenSet splits a normalized name into its word set.
func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

// overlap counts tokens present in both sets.
func overlap(a, b map[string]bool) int {
	n := 0
	for tok := range a {
		if b[tok] {
			n++
		}
	}
	return n
}
