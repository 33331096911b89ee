package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

// fakeLookup is a minimal ItemLookup for order tests.
type fakeLookup map[string]*Item

func (f fakeLookup) Item(id string) (*Item, bool) {
	item, ok := f[id]
	return item, ok
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testLookup() fakeLookup {
	return fakeLookup{
		"Bur_1": {ID: "Bur_1", Name: "Big Mac", Price: price("5.99"), Category: "Burgers", Available: true},
		"Fri_2": {ID: "Fri_2", Name: "World Famous Fries", Price: price("3.49"), Category: "Fries & Sides",
			Sizes: []Size{SizeSmall, SizeMedium, SizeLarge}, Available: true},
		"Bev_3": {ID: "Bev_3", Name: "Coca-Cola", Price: price("2.19"), Category: "Beverages",
			Sizes: []Size{SizeSmall, SizeMedium, SizeLarge}, Available: true},
	}
}

func TestAddLineValidation(t *testing.T) {
	lookup := testLookup()

	tests := []struct {
		name     string
		itemID   string
		quantity int
		size     Size
		want     bool
	}{
		{"unsized item no size", "Bur_1", 1, SizeNone, true},
		{"unsized item with size", "Bur_1", 1, SizeLarge, false},
		{"sized item with size", "Fri_2", 1, SizeMedium, true},
		{"sized item missing size", "Fri_2", 1, SizeNone, false},
		{"unknown item", "Xxx_9", 1, SizeNone, false},
		{"zero quantity", "Bur_1", 0, SizeNone, false},
		{"negative quantity", "Bur_1", -2, SizeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := NewOrder("order_1")
			got := order.AddLine(lookup, tt.itemID, tt.quantity, tt.size, "")
			if got != tt.want {
				t.Fatalf("AddLine=%v, want %v", got, tt.want)
			}
			if !tt.want {
				if len(order.Lines) != 0 {
					t.Fatal("failed add mutated lines")
				}
				if !order.Total.IsZero() {
					t.Fatalf("failed add changed total to %s", order.Total)
				}
			}
		})
	}
}

// expectedTotal recomputes the invariant by hand.
func expectedTotal(lookup fakeLookup, order *Order) decimal.Decimal {
	total := decimal.Zero
	for _, line := range order.Lines {
		item := lookup[line.ItemID]
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func TestTotalRecomputedOnEveryMutation(t *testing.T) {
	lookup := testLookup()
	order := NewOrder("order_1")

	check := func(step string) {
		t.Helper()
		if want := expectedTotal(lookup, order); !order.Total.Equal(want) {
			t.Fatalf("%s: total %s, want %s", step, order.Total, want)
		}
	}

	if !order.AddLine(lookup, "Bur_1", 2, SizeNone, "") {
		t.Fatal("add big mac failed")
	}
	check("after first add")

	if !order.AddLine(lookup, "Fri_2", 1, SizeLarge, "") {
		t.Fatal("add fries failed")
	}
	check("after second add")

	if !order.AddLine(lookup, "Bev_3", 3, SizeSmall, "no ice") {
		t.Fatal("add coke failed")
	}
	check("after third add")

	if !order.RemoveLine(lookup, 1) {
		t.Fatal("remove failed")
	}
	check("after remove")

	if !order.RemoveLine(lookup, 0) {
		t.Fatal("remove failed")
	}
	check("after second remove")

	// Concrete value check: 3x 2.19 = 6.57.
	if !order.Total.Equal(price("6.57")) {
		t.Fatalf("final total %s, want 6.57", order.Total)
	}
}

func TestRemoveLineOutOfRange(t *testing.T) {
	lookup := testLookup()
	order := NewOrder("order_1")
	order.AddLine(lookup, "Bur_1", 1, SizeNone, "")
	before := order.Total

	for _, idx := range []int{-1, 1, 5} {
		if order.RemoveLine(lookup, idx) {
			t.Fatalf("RemoveLine(%d) succeeded on 1-line order", idx)
		}
	}
	if len(order.Lines) != 1 || !order.Total.Equal(before) {
		t.Fatal("failed remove mutated the order")
	}
}

func TestCompletedOrderIsImmutable(t *testing.T) {
	lookup := testLookup()
	order := NewOrder("order_1")
	order.AddLine(lookup, "Bur_1", 1, SizeNone, "")
	order.Status = OrderCompleted

	if order.AddLine(lookup, "Bur_1", 1, SizeNone, "") {
		t.Fatal("AddLine succeeded on completed order")
	}
	if order.RemoveLine(lookup, 0) {
		t.Fatal("RemoveLine succeeded on completed order")
	}
	if len(order.Lines) != 1 {
		t.Fatalf("completed order mutated: %d lines", len(order.Lines))
	}
}

func TestRecalculateSkipsVanishedItems(t *testing.T) {
	lookup := testLookup()
	order := NewOrder("order_1")
	order.AddLine(lookup, "Bur_1", 1, SizeNone, "")
	order.AddLine(lookup, "Bev_3", 1, SizeSmall, "")

	// The item disappears on a catalog refresh; its line contributes
	// nothing to the recomputed total.
	delete(lookup, "Bev_3")
	order.Recalculate(lookup)

	if !order.Total.Equal(price("5.99")) {
		t.Fatalf("total %s, want 5.99", order.Total)
	}
}
