package entity

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = `pending`
	StatusProcessing OrderStatus = `processing`
	StatusCompleted  OrderStatus = `completed`
	StatusCancelled  OrderStatus = `cancelled`
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type Orders []Order

type Order struct {
	ID           string
	CustomerName string
	Phone        string
	Medicine     string
	Status       OrderStatus
	CreatedAt    time.Time
}

// CreateOrder carries the caller-supplied fields of a new order.
// ID, status and creation time are assigned by the storage.
type CreateOrder struct {
	CustomerName string
	Phone        string
	Medicine     string
}

// UpdateOrder describes a partial update. Nil fields are left unchanged.
type UpdateOrder struct {
	CustomerName *string
	Phone        *string
	Medicine     *string
	Status       *OrderStatus
}

type OrderQuery struct {
	Search string
	Page   int
	Limit  int
}

// OrderPage is one page of a filtered listing. Total counts all matching
// orders before pagination.
type OrderPage struct {
	Orders Orders
	Total  int
}
