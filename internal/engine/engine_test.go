package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/logger"
	"github.com/hammamikhairi/drivethru/internal/menu"
	"github.com/hammamikhairi/drivethru/internal/storage"
)

func setupEngine(t *testing.T) (*Engine, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	source := menu.NewStaticSource(log)
	archive := storage.NewMemoryArchive(log)
	eng := New(source, archive, log)
	ctx := context.Background()
	if err := eng.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return eng, ctx
}

// failSource always fails, standing in for an unreachable menu page.
type failSource struct{}

func (failSource) Fetch(ctx context.Context) ([]domain.RawCategory, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestRefreshFailureDegradesToEmptyCatalog(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	eng := New(failSource{}, storage.NewMemoryArchive(log), log)
	ctx := context.Background()

	err := eng.Refresh(ctx)
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if eng.Catalog().Len() != 0 {
		t.Fatalf("expected empty catalog, got %d items", eng.Catalog().Len())
	}

	// The session keeps running: operations fail politely, nothing panics.
	res := eng.AddItem("big mac", 1, domain.SizeNone, "")
	if res.Kind != domain.ResultFailure || !errors.Is(res.Err, domain.ErrNotFound) {
		t.Fatalf("expected not-found failure, got %s (%v)", res.Kind, res.Err)
	}
}

func TestAddItemAutoStartsOrder(t *testing.T) {
	eng, _ := setupEngine(t)

	if eng.CurrentOrder() != nil {
		t.Fatal("expected no active order before first add")
	}

	res := eng.AddItem("big mac", 1, domain.SizeNone, "")
	if res.Kind != domain.ResultSuccess {
		t.Fatalf("add failed: %s (%s)", res.Kind, res.Message)
	}

	order := eng.CurrentOrder()
	if order == nil {
		t.Fatal("no order started")
	}
	if len(order.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(order.Lines))
	}
	if order.Status != domain.OrderInProgress {
		t.Fatalf("expected in_progress, got %s", order.Status)
	}
	if order.Total.IsZero() {
		t.Fatal("total not recomputed")
	}
}

func TestAddItemNotFound(t *testing.T) {
	eng, _ := setupEngine(t)

	res := eng.AddItem("sushi platter", 1, domain.SizeNone, "")
	if res.Kind != domain.ResultFailure {
		t.Fatalf("expected failure, got %s", res.Kind)
	}
	if !errors.Is(res.Err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", res.Err)
	}
	if order := eng.CurrentOrder(); order != nil && len(order.Lines) != 0 {
		t.Fatal("failed add left lines behind")
	}
}

func TestAddItemSizeClarification(t *testing.T) {
	eng, _ := setupEngine(t)

	res := eng.AddItem("sprite", 1, domain.SizeNone, "")
	if res.Kind != domain.ResultClarification {
		t.Fatalf("expected clarification, got %s (%s)", res.Kind, res.Message)
	}
	if order := eng.CurrentOrder(); order != nil && len(order.Lines) != 0 {
		t.Fatal("clarification added a line as a side effect")
	}

	// With a size the same mention goes through.
	res = eng.AddItem("sprite", 1, domain.SizeLarge, "")
	if res.Kind != domain.ResultSuccess {
		t.Fatalf("sized add failed: %s (%s)", res.Kind, res.Message)
	}
}

func TestAddItemCoffeeClarification(t *testing.T) {
	eng, _ := setupEngine(t)

	res := eng.AddItem("coffee", 1, domain.SizeMedium, "")
	if res.Kind != domain.ResultClarification {
		t.Fatalf("expected clarification, got %s", res.Kind)
	}
	if order := eng.CurrentOrder(); order != nil && len(order.Lines) != 0 {
		t.Fatal("clarification added a line as a side effect")
	}
}

func TestAddItemDropsSizeForUnsizedItem(t *testing.T) {
	eng, _ := setupEngine(t)

	res := eng.AddItem("big mac", 1, domain.SizeLarge, "")
	if res.Kind != domain.ResultSuccess {
		t.Fatalf("expected success, got %s (%s)", res.Kind, res.Message)
	}
	if got := eng.CurrentOrder().Lines[0].Size; got != domain.SizeNone {
		t.Fatalf("stored size %s, want none", got)
	}
}

func TestRemoveItemMostRecentFirst(t *testing.T) {
	eng, _ := setupEngine(t)

	eng.AddItem("sprite", 1, domain.SizeSmall, "")
	eng.AddItem("big mac", 1, domain.SizeNone, "")
	eng.AddItem("sprite", 1, domain.SizeLarge, "")

	res := eng.RemoveItem("sprite", 1)
	if res.Kind != domain.ResultSuccess {
		t.Fatalf("remove failed: %s (%s)", res.Kind, res.Message)
	}

	order := eng.CurrentOrder()
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Lines))
	}
	// The large Sprite was added last, so it goes first.
	if order.Lines[0].Size != domain.SizeSmall {
		t.Fatalf("surviving line has size %s, want small", order.Lines[0].Size)
	}
}

func TestRemoveItemQuantityAndMisses(t *testing.T) {
	eng, _ := setupEngine(t)

	res := eng.RemoveItem("sprite", 1)
	if !errors.Is(res.Err, domain.ErrNoActiveOrder) {
		t.Fatalf("expected ErrNoActiveOrder, got %v", res.Err)
	}

	eng.StartOrder()
	res = eng.RemoveItem("sprite", 1)
	if !errors.Is(res.Err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", res.Err)
	}

	eng.AddItem("big mac", 1, domain.SizeNone, "")
	res = eng.RemoveItem("sprite", 1)
	if !errors.Is(res.Err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", res.Err)
	}

	eng.AddItem("sprite", 1, domain.SizeSmall, "")
	eng.AddItem("sprite", 1, domain.SizeLarge, "")
	res = eng.RemoveItem("sprite", 5)
	if res.Kind != domain.ResultSuccess {
		t.Fatalf("remove failed: %s", res.Kind)
	}
	if got := len(eng.CurrentOrder().Lines); got != 1 {
		t.Fatalf("expected 1 line left, got %d", got)
	}
}

func TestRemoveLineIndex(t *testing.T) {
	eng, _ := setupEngine(t)

	res := eng.RemoveLine(0)
	if !errors.Is(res.Err, domain.ErrNoActiveOrder) {
		t.Fatalf("expected ErrNoActiveOrder, got %v", res.Err)
	}

	eng.AddItem("big mac", 1, domain.SizeNone, "")
	res = eng.RemoveLine(3)
	if !errors.Is(res.Err, domain.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", res.Err)
	}
	if got := len(eng.CurrentOrder().Lines); got != 1 {
		t.Fatal("failed remove mutated the order")
	}

	res = eng.RemoveLine(0)
	if res.Kind != domain.ResultSuccess {
		t.Fatalf("remove failed: %s", res.Kind)
	}
}

func TestCheckout(t *testing.T) {
	eng, ctx := setupEngine(t)

	// No active order.
	res := eng.Checkout(ctx)
	if !errors.Is(res.Err, domain.ErrNoActiveOrder) {
		t.Fatalf("expected ErrNoActiveOrder, got %v", res.Err)
	}

	// Empty order stays in progress.
	eng.StartOrder()
	res = eng.Checkout(ctx)
	if !errors.Is(res.Err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", res.Err)
	}
	if eng.CurrentOrder() == nil || eng.CurrentOrder().Status != domain.OrderInProgress {
		t.Fatal("failed checkout changed the order state")
	}

	// Non-empty order completes, archives, clears the slot.
	eng.AddItem("big mac", 2, domain.SizeNone, "")
	order := eng.CurrentOrder()
	res = eng.Checkout(ctx)
	if res.Kind != domain.ResultSuccess {
		t.Fatalf("checkout failed: %s (%s)", res.Kind, res.Message)
	}
	if eng.CurrentOrder() != nil {
		t.Fatal("active slot not cleared after checkout")
	}

	history, err := eng.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 archived order, got %d", len(history))
	}
	if history[0] != order {
		t.Fatal("archived order is not the checked-out order")
	}
	if history[0].Status != domain.OrderCompleted {
		t.Fatalf("archived order status %s, want completed", history[0].Status)
	}
}

func TestHistoryKeepsCheckoutOrder(t *testing.T) {
	eng, ctx := setupEngine(t)

	eng.AddItem("big mac", 1, domain.SizeNone, "")
	eng.Checkout(ctx)
	eng.AddItem("mcdouble", 1, domain.SizeNone, "")
	eng.Checkout(ctx)

	history, _ := eng.History(ctx)
	if len(history) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(history))
	}
	if history[0].ID == history[1].ID {
		t.Fatalf("order ids collide: %s", history[0].ID)
	}
	if history[0].CreatedAt.After(history[1].CreatedAt) {
		t.Fatal("history out of checkout order")
	}
}

func TestStartOrderDiscardsUnfinished(t *testing.T) {
	eng, ctx := setupEngine(t)

	eng.AddItem("big mac", 1, domain.SizeNone, "")
	abandoned := eng.CurrentOrder()

	fresh := eng.StartOrder()
	if fresh == abandoned {
		t.Fatal("start did not replace the active order")
	}
	if !fresh.Empty() {
		t.Fatal("fresh order not empty")
	}
	if fresh.ID == abandoned.ID {
		t.Fatalf("order id %s reused", fresh.ID)
	}

	// The abandoned order is gone, not archived.
	history, _ := eng.History(ctx)
	if len(history) != 0 {
		t.Fatalf("abandoned order leaked into history: %d entries", len(history))
	}
}
