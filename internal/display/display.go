// Package display renders menus, orders, and assistant replies for the
// terminal. Pure formatting -- nothing here mutates session state.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/drivethru/internal/catalog"
	"github.com/hammamikhairi/drivethru/internal/domain"
)

// ── Styles (soft palette) ────────────────────────────────────────

var (
	// bannerStyle — muted slate for the startup banner.
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// categoryStyle — soft amber for category headings.
	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	// itemStyle — light zinc for item lines.
	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// priceStyle — soft mint for prices and totals.
	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	// hintStyle — dimmed zinc for hints and metadata.
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))
)

// Menu renders the full catalog: categories in order, items with prices,
// size availability, and a short how-to-order footer.
func Menu(cat *catalog.Catalog) string {
	if cat.Len() == 0 {
		return hintStyle.Render("The menu is empty right now. Try refreshing, or bear with us.")
	}

	var b strings.Builder
	b.WriteString("Here's our menu:\n\n")
	for _, group := range cat.Categories() {
		b.WriteString(categoryStyle.Render(strings.ToUpper(group.Name)))
		b.WriteByte('\n')
		for _, item := range group.Items {
			b.WriteString(itemStyle.Render(fmt.Sprintf("- %s: ", item.Name)))
			b.WriteString(priceStyle.Render("$" + item.Price.StringFixed(2)))
			b.WriteByte('\n')
			if item.Sized() {
				b.WriteString(hintStyle.Render("  Available sizes: " + sizeNames(item.Sizes)))
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(hintStyle.Render(strings.Join([]string{
		"To order, you can say things like:",
		"- 'I'd like a Big Mac and a large fries'",
		"- 'Can I get a medium Coke?'",
		"- 'Add a Quarter Pounder to my order'",
		"I'll ask you for any missing details like size or specific type of item.",
	}, "\n")))
	return b.String()
}

// Order renders the in-progress order with per-line prices and the
// running total. A nil or empty order renders as such.
func Order(order *domain.Order, lookup domain.ItemLookup) string {
	if order == nil || order.Empty() {
		return hintStyle.Render("Your order is currently empty")
	}

	var b strings.Builder
	b.WriteString("Your current order:\n")
	for _, line := range order.Lines {
		name := line.ItemID
		linePrice := decimal.Zero
		if item, ok := lookup.Item(line.ItemID); ok {
			name = item.Name
			linePrice = item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		b.WriteString(itemStyle.Render(fmt.Sprintf("- %dx %s", line.Quantity, name)))
		if line.Size != domain.SizeNone {
			b.WriteString(itemStyle.Render(fmt.Sprintf(" (%s)", line.Size)))
		}
		if line.Instructions != "" {
			b.WriteString(hintStyle.Render(" - " + line.Instructions))
		}
		b.WriteString(itemStyle.Render(": "))
		b.WriteString(priceStyle.Render("$" + linePrice.StringFixed(2)))
		b.WriteByte('\n')
	}
	b.WriteString("\nTotal: ")
	b.WriteString(priceStyle.Render("$" + order.Total.StringFixed(2)))
	return b.String()
}

// History renders the completed orders, oldest first.
func History(orders []*domain.Order) string {
	if len(orders) == 0 {
		return hintStyle.Render("No completed orders yet.")
	}
	var b strings.Builder
	for _, o := range orders {
		b.WriteString(itemStyle.Render(fmt.Sprintf("%s — %d items, ", o.ID, len(o.Lines))))
		b.WriteString(priceStyle.Render("$" + o.Total.StringFixed(2)))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Help renders the command summary for the REPL.
func Help() string {
	return hintStyle.Render(strings.Join([]string{
		"You can say:",
		"  menu                     show the full menu",
		"  i'd like a big mac       add an item (sizes: small/medium/large)",
		"  remove the fries         take an item back off",
		"  my order                 show the current order and total",
		"  past orders              show completed orders",
		"  new order                start over",
		"  checkout                 complete the order",
		"  quit                     leave the drive-thru",
	}, "\n"))
}

func sizeNames(sizes []domain.Size) string {
	names := make([]string, len(sizes))
	for i, s := range sizes {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
