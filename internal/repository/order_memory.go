package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/worldwidesim/esim-store/internal/model"
)

// MemoryOrderStore keeps orders in process memory. Used when no database
// is configured, and by tests.
type MemoryOrderStore struct {
	mu     sync.Mutex
	byUser map[int64][]model.Order
	seq    int
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{byUser: make(map[int64][]model.Order)}
}

func (s *MemoryOrderStore) Append(_ context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	order.ID = fmt.Sprintf("mem-%d", s.seq)
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	s.byUser[order.UserID] = append(s.byUser[order.UserID], *order)
	return nil
}

func (s *MemoryOrderStore) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]model.Order, len(s.byUser[userID]))
	copy(orders, s.byUser[userID])
	return orders, nil
}
