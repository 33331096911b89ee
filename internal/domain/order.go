package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks the lifecycle of an order.
type OrderStatus int

const (
	OrderInProgress OrderStatus = iota
	OrderCompleted
)

// String returns a human-readable order status.
func (s OrderStatus) String() string {
	switch s {
	case OrderInProgress:
		return "in_progress"
	case OrderCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// OrderLine is one entry in an order. It references the catalog item by id
// rather than copying item data, so name and price are always looked up
// live and cannot drift from the recomputed total.
type OrderLine struct {
	ItemID       string
	Quantity     int
	Size         Size
	Instructions string
}

// Order is an ordered collection of lines building toward checkout.
// All mutation goes through AddLine / RemoveLine so Total is recomputed
// on every change.
type Order struct {
	ID        string
	Lines     []OrderLine
	Status    OrderStatus
	CreatedAt time.Time
	Total     decimal.Decimal
}

// NewOrder creates an empty in-progress order.
func NewOrder(id string) *Order {
	return &Order{
		ID:        id,
		Status:    OrderInProgress,
		CreatedAt: time.Now(),
		Total:     decimal.Zero,
	}
}

// AddLine appends a line for the given item and recomputes the total.
// Returns false without mutating when the order is not in progress, the
// item is unknown, the quantity is below one, or the size is not allowed
// for the item (including a sized item with no size given).
func (o *Order) AddLine(lookup ItemLookup, itemID string, quantity int, size Size, instructions string) bool {
	if o.Status != OrderInProgress {
		return false
	}
	item, ok := lookup.Item(itemID)
	if !ok {
		return false
	}
	if quantity < 1 {
		return false
	}
	if !item.AllowsSize(size) {
		return false
	}

	o.Lines = append(o.Lines, OrderLine{
		ItemID:       itemID,
		Quantity:     quantity,
		Size:         size,
		Instructions: instructions,
	})
	o.Recalculate(lookup)
	return true
}

// RemoveLine removes the line at index and recomputes the total.
// Returns false without mutating when the order is not in progress or the
// index is out of range.
func (o *Order) RemoveLine(lookup ItemLookup, index int) bool {
	if o.Status != OrderInProgress {
		return false
	}
	if index < 0 || index >= len(o.Lines) {
		return false
	}
	o.Lines = append(o.Lines[:index], o.Lines[index+1:]...)
	o.Recalculate(lookup)
	return true
}

// Recalculate recomputes Total as the sum of live item price times
// quantity over all lines. Lines whose item has vanished from the catalog
// contribute nothing.
func (o *Order) Recalculate(lookup ItemLookup) {
	total := decimal.Zero
	for _, line := range o.Lines {
		item, ok := lookup.Item(line.ItemID)
		if !ok {
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	o.Total = total
}

// Empty reports whether the order has no lines.
func (o *Order) Empty() bool {
	return len(o.Lines) == 0
}
