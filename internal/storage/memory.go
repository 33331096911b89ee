// Package storage provides order archive implementations.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/logger"
)

// Compile-time interface check.
var _ domain.OrderArchive = (*MemoryArchive)(nil)

// MemoryArchive keeps completed orders in memory, in checkout order.
// Append-only: nothing is removed or rewritten once archived. Safe for
// concurrent access.
type MemoryArchive struct {
	mu     sync.RWMutex
	orders []*domain.Order
	log    *logger.Logger
}

// NewMemoryArchive creates an empty in-memory order archive.
func NewMemoryArchive(log *logger.Logger) *MemoryArchive {
	return &MemoryArchive{log: log}
}

// Append archives a completed order.
func (a *MemoryArchive) Append(ctx context.Context, order *domain.Order) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.orders = append(a.orders, order)
	a.log.Debug("archived order %s (%d lines, total %s)", order.ID, len(order.Lines), order.Total)
	return nil
}

// List returns the archived orders, oldest first.
func (a *MemoryArchive) List(ctx context.Context) ([]*domain.Order, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*domain.Order, len(a.orders))
	copy(out, a.orders)
	return out, nil
}

// Len returns the archived order count.
func (a *MemoryArchive) Len(ctx context.Context) (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.orders), nil
}
