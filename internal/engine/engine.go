// Package engine implements the ordering session: one catalog, at most
// one in-progress order, and the archive of completed ones. Every
// mutation of session state funnels through here, so order totals are
// recomputed on every change and readers never observe a half-built
// catalog.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hammamikhairi/drivethru/internal/catalog"
	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/logger"
	"github.com/hammamikhairi/drivethru/internal/resolver"
)

// Option configures the engine.
type Option func(*Engine)

// WithCatalogOptions forwards build options to every catalog rebuild.
func WithCatalogOptions(opts ...catalog.Option) Option {
	return func(e *Engine) {
		e.buildOpts = opts
	}
}

// Engine manages one ordering session. It depends only on the domain
// ports and is fully testable without a network.
type Engine struct {
	source  domain.MenuSource
	archive domain.OrderArchive
	log     *logger.Logger

	sessionID string
	buildOpts []catalog.Option

	cat      *catalog.Catalog
	active   *domain.Order
	orderSeq int
}

// New creates an engine with an empty catalog. Call Refresh to load the
// menu before taking orders.
func New(source domain.MenuSource, archive domain.OrderArchive, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		source:    source,
		archive:   archive,
		log:       log,
		sessionID: uuid.NewString(),
		cat:       catalog.Build(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	log.Debug("session %s created", e.sessionID)
	return e
}

// SessionID returns the identifier this session logs under.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Refresh rebuilds the catalog from the menu source. The new catalog is
// built completely before it replaces the old one, so no caller sees an
// intermediate state. A source failure degrades to an empty catalog and
// is reported, not fatal: the session keeps running with zero items.
func (e *Engine) Refresh(ctx context.Context) error {
	raw, err := e.source.Fetch(ctx)
	if err != nil {
		e.cat = catalog.Build(nil, e.buildOpts...)
		if e.active != nil {
			e.active.Recalculate(e.cat)
		}
		e.log.Warn("session %s: menu refresh failed, serving empty catalog: %v", e.sessionID, err)
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	e.cat = catalog.Build(raw, e.buildOpts...)
	if e.active != nil {
		e.active.Recalculate(e.cat)
	}
	e.log.Info("session %s: catalog refreshed, %d items", e.sessionID, e.cat.Len())
	return nil
}

// Catalog returns the current catalog build.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// StartOrder begins a fresh order, replacing any in-progress one. The
// replaced order is discarded, not archived.
func (e *Engine) StartOrder() *domain.Order {
	if e.active != nil && !e.active.Empty() {
		e.log.Warn("session %s: discarding unfinished order %s (%d lines)", e.sessionID, e.active.ID, len(e.active.Lines))
	}
	e.orderSeq++
	e.active = domain.NewOrder(fmt.Sprintf("order_%d", e.orderSeq))
	e.log.Info("session %s: started %s", e.sessionID, e.active.ID)
	return e.active
}

// AddItem resolves a free-text mention and adds the item to the active
// order, starting one if none exists. A mention that matches nothing,
// needs a variant choice, or needs a size comes back as a failure or
// clarification; the order is untouched in every non-success case.
func (e *Engine) AddItem(mention string, quantity int, size domain.Size, instructions string) domain.Result {
	if e.active == nil {
		e.StartOrder()
	}
	if quantity < 1 {
		quantity = 1
	}

	res := resolver.Resolve(e.cat, mention)
	switch res.Kind {
	case resolver.KindNotFound:
		e.log.Debug("session %s: no match for %q", e.sessionID, mention)
		return domain.Failure(domain.ErrNotFound,
			fmt.Sprintf("Sorry, I couldn't find '%s' on the menu. Please check the menu and try again.", mention))
	case resolver.KindClarify:
		e.log.Debug("session %s: %q needs a variant choice", e.sessionID, mention)
		return domain.Clarify(res.Prompt)
	}

	item, ok := e.cat.Item(res.ItemID)
	if !ok {
		return domain.Failure(domain.ErrNotFound,
			fmt.Sprintf("Sorry, I couldn't find '%s' on the menu. Please check the menu and try again.", mention))
	}

	if item.Sized() && size == domain.SizeNone {
		return domain.Clarify(fmt.Sprintf("I see you want %s. What size would you like? Available sizes: %s",
			item.Name, sizeList(item.Sizes)))
	}
	if !item.Sized() {
		// "a large Big Mac" -- the size means nothing here, drop it.
		size = domain.SizeNone
	}

	// The order re-validates size and id independently of the checks
	// above; a false here means the line was rejected.
	if !e.active.AddLine(e.cat, item.ID, quantity, size, instructions) {
		e.log.Warn("session %s: line rejected for %s (size=%s, qty=%d)", e.sessionID, item.ID, size, quantity)
		return domain.Failure(domain.ErrInvalidSize, "Sorry, I couldn't add that item to your order")
	}

	e.log.Info("session %s: added %dx %s to %s, total %s", e.sessionID, quantity, item.ID, e.active.ID, e.active.Total)
	sizeText := ""
	if size != domain.SizeNone {
		sizeText = fmt.Sprintf(" (%s)", size)
	}
	return domain.Success(fmt.Sprintf("Added %dx %s%s to your order", quantity, item.Name, sizeText))
}

// RemoveItem removes up to quantity lines whose item name contains the
// mention, most recently added first.
func (e *Engine) RemoveItem(mention string, quantity int) domain.Result {
	if e.active == nil {
		return domain.Failure(domain.ErrNoActiveOrder, "Your order is currently empty.")
	}
	if e.active.Empty() {
		return domain.Failure(domain.ErrEmptyOrder, "Your order is currently empty.")
	}
	if quantity < 1 {
		quantity = 1
	}

	needle := strings.ToLower(strings.TrimSpace(mention))
	var matches []int
	for i, line := range e.active.Lines {
		item, ok := e.cat.Item(line.ItemID)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return domain.Failure(domain.ErrNotFound,
			fmt.Sprintf("Sorry, I couldn't find '%s' in your current order.", mention))
	}

	removed := 0
	for i := len(matches) - 1; i >= 0 && removed < quantity; i-- {
		if e.active.RemoveLine(e.cat, matches[i]) {
			removed++
		}
	}

	e.log.Info("session %s: removed %dx %q from %s, total %s", e.sessionID, removed, mention, e.active.ID, e.active.Total)
	return domain.Success(fmt.Sprintf("Removed %dx %s from your order", removed, mention))
}

// RemoveLine removes a single line by index. Fails without mutation on a
// missing order or an out-of-range index.
func (e *Engine) RemoveLine(index int) domain.Result {
	if e.active == nil {
		return domain.Failure(domain.ErrNoActiveOrder, "Your order is currently empty.")
	}
	if !e.active.RemoveLine(e.cat, index) {
		return domain.Failure(domain.ErrInvalidIndex,
			fmt.Sprintf("There's no item #%d in your order.", index+1))
	}
	return domain.Success("Removed that item from your order")
}

// Checkout completes the active order, archives it, and clears the
// active slot. Fails on a missing or empty order.
func (e *Engine) Checkout(ctx context.Context) domain.Result {
	if e.active == nil {
		return domain.Failure(domain.ErrNoActiveOrder, "Sorry, I couldn't process your checkout. Your order might be empty.")
	}
	if e.active.Empty() {
		return domain.Failure(domain.ErrEmptyOrder, "Sorry, I couldn't process your checkout. Your order might be empty.")
	}

	order := e.active
	order.Status = domain.OrderCompleted
	if err := e.archive.Append(ctx, order); err != nil {
		order.Status = domain.OrderInProgress
		e.log.Error("session %s: archiving %s failed: %v", e.sessionID, order.ID, err)
		return domain.Failure(err, "Sorry, I couldn't process your checkout.")
	}
	e.active = nil

	e.log.Info("session %s: completed %s, total %s", e.sessionID, order.ID, order.Total)
	return domain.Success("Thank you for your order! Your order has been completed. Please pull forward to the next window.")
}

// CurrentOrder returns the in-progress order, or nil.
func (e *Engine) CurrentOrder() *domain.Order {
	return e.active
}

// History returns all completed orders in checkout order.
func (e *Engine) History(ctx context.Context) ([]*domain.Order, error) {
	return e.archive.List(ctx)
}

// sizeList joins size names for a clarification prompt.
func sizeList(sizes []domain.Size) string {
	names := make([]string, len(sizes))
	for i, s := range sizes {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
