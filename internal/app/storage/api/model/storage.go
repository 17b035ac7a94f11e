package model

import (
	"context"

	"github.com/merolaashraf15-source/MED/internal/app/entity"
)

// Storage is the order repository contract. Exactly one in-memory
// implementation exists; the postgres implementation is a drop-in
// alternative satisfying the same semantics.
type Storage interface {
	Close() error
	Ping(ctx context.Context) error

	CreateOrder(ctx context.Context, order entity.CreateOrder) (entity.Order, error)
	GetOrder(ctx context.Context, id string) (entity.Order, error)
	ListOrders(ctx context.Context, query entity.OrderQuery) (entity.OrderPage, error)
	UpdateOrder(ctx context.Context, id string, update entity.UpdateOrder) (entity.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
}
