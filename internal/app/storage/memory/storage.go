package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/merolaashraf15-source/MED/internal/app/entity"
	err_storage "github.com/merolaashraf15-source/MED/internal/app/storage/api/errors"
	"github.com/merolaashraf15-source/MED/internal/app/storage/api/model"
)

// Storage keeps orders in a plain map guarded by a RWMutex, so mutating
// calls are serialized against listing and no reader observes a
// half-applied write. The map grows without bound: nothing evicts orders.
type Storage struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
}

func NewStorage() *Storage {
	return &Storage{
		orders: make(map[string]entity.Order),
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) Ping(_ context.Context) error {
	return nil
}

func (s *Storage) CreateOrder(_ context.Context, create entity.CreateOrder) (entity.Order, error) {
	order := entity.Order{
		ID:           uuid.New().String(),
		CustomerName: create.CustomerName,
		Phone:        create.Phone,
		Medicine:     create.Medicine,
		Status:       entity.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID] = order

	return order, nil
}

func (s *Storage) GetOrder(_ context.Context, id string) (entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return entity.Order{}, err_storage.ErrOrderNotFound
	}

	return order, nil
}

func (s *Storage) ListOrders(_ context.Context, query entity.OrderQuery) (entity.OrderPage, error) {
	search := strings.TrimSpace(query.Search)
	searchLower := strings.ToLower(search)

	s.mu.RLock()
	matched := make(entity.Orders, 0, len(s.orders))
	for _, order := range s.orders {
		if matchesSearch(order, search, searchLower) {
			matched = append(matched, order)
		}
	}
	s.mu.RUnlock()

	// Most recent first; ties broken by ID so repeated calls with no
	// intervening writes return an identical ordering.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	return entity.OrderPage{
		Orders: paginate(matched, query.Page, query.Limit),
		Total:  len(matched),
	}, nil
}

func (s *Storage) UpdateOrder(_ context.Context, id string, update entity.UpdateOrder) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return entity.Order{}, err_storage.ErrOrderNotFound
	}

	if update.CustomerName != nil {
		order.CustomerName = *update.CustomerName
	}
	if update.Phone != nil {
		order.Phone = *update.Phone
	}
	if update.Medicine != nil {
		order.Medicine = *update.Medicine
	}
	if update.Status != nil {
		order.Status = *update.Status
	}

	s.orders[id] = order

	return order, nil
}

func (s *Storage) DeleteOrder(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.orders[id]
	if ok {
		delete(s.orders, id)
	}

	return ok, nil
}

// matchesSearch reports whether an order matches the search term:
// case-insensitive against the customer name and the medicine, raw
// substring against the phone.
func matchesSearch(order entity.Order, search, searchLower string) bool {
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(order.CustomerName), searchLower) ||
		strings.Contains(strings.ToLower(order.Medicine), searchLower) ||
		strings.Contains(order.Phone, search)
}

func paginate(orders entity.Orders, page, limit int) entity.Orders {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	if start >= len(orders) {
		return entity.Orders{}
	}

	end := start + limit
	if end > len(orders) {
		end = len(orders)
	}

	return orders[start:end]
}

var _ model.Storage = (*Storage)(nil)
