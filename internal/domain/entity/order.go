package entity

import "time"

// OrderStatus tracks where an order sits in its fulfilment flow.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusRank orders the fulfilment flow. Cancelled sits outside the flow and
// is reachable from any non-terminal status.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusConfirmed: 1,
	OrderStatusPreparing: 2,
	OrderStatusReady:     3,
	OrderStatusDelivered: 4,
}

// Valid reports whether s is one of the enumerated statuses.
func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := statusRank[s]

	return ok
}

// Terminal reports whether the order can no longer change status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether an order may move from s to next. The flow
// only moves forward, one step at a time, except that any non-terminal order
// may be cancelled. Re-sending the current status is an allowed no-op, so a
// patch that only touches other fields can echo the status back unchanged.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == s {
		return s.Valid()
	}
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	return statusRank[next] == statusRank[s]+1
}

// Order is a customer purchase captured at the counter or online.
type Order struct {
	ID              int64       `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	PaymentMethod   string      `json:"payment_method"`
	Notes           string      `json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
