package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusReady.Terminal())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "next step forward", from: OrderStatusPending, to: OrderStatusConfirmed, want: true},
		{name: "ready to delivered", from: OrderStatusReady, to: OrderStatusDelivered, want: true},
		{name: "skipping a step", from: OrderStatusPending, to: OrderStatusPreparing, want: false},
		{name: "moving backwards", from: OrderStatusPreparing, to: OrderStatusConfirmed, want: false},
		{name: "echoing current status", from: OrderStatusConfirmed, to: OrderStatusConfirmed, want: true},
		{name: "echoing terminal status", from: OrderStatusDelivered, to: OrderStatusDelivered, want: true},
		{name: "cancel from pending", from: OrderStatusPending, to: OrderStatusCancelled, want: true},
		{name: "cancel from ready", from: OrderStatusReady, to: OrderStatusCancelled, want: true},
		{name: "delivered is final", from: OrderStatusDelivered, to: OrderStatusCancelled, want: false},
		{name: "cancelled is final", from: OrderStatusCancelled, to: OrderStatusConfirmed, want: false},
		{name: "unknown target", from: OrderStatusPending, to: OrderStatus("shipped"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
