package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderForTest(t *testing.T, notifier *recordingNotifier) usecase.OrderUsecase {
	t.Helper()

	return NewOrderService(OrderServiceParams{
		Local:    testLocal(t),
		Notifier: notifier,
		Logger:   testLogger(),
	})
}

func TestOrderService_CreateDefaultsToPending(t *testing.T) {
	orders := newOrderForTest(t, &recordingNotifier{})

	created, err := orders.CreateOrder(context.Background(), &entity.Order{CustomerName: "Mia", Total: 30})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, created.Status)
}

func TestOrderService_CreateRejectsUnknownStatus(t *testing.T) {
	orders := newOrderForTest(t, &recordingNotifier{})

	_, err := orders.CreateOrder(context.Background(), &entity.Order{CustomerName: "Mia", Status: "shipped"})
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestOrderService_StatusTransitions(t *testing.T) {
	// Fixture order 1 is pending, fixture order 2 is delivered.
	tests := []struct {
		name    string
		orderID int64
		next    entity.OrderStatus
		wantErr error
	}{
		{name: "pending to confirmed", orderID: 1, next: entity.OrderStatusConfirmed},
		{name: "pending to cancelled", orderID: 1, next: entity.OrderStatusCancelled},
		{name: "pending skips ahead", orderID: 1, next: entity.OrderStatusReady, wantErr: ErrInvalidStatusTransition},
		{name: "echoing current status", orderID: 1, next: entity.OrderStatusPending},
		{name: "delivered is terminal", orderID: 2, next: entity.OrderStatusCancelled, wantErr: ErrInvalidStatusTransition},
		{name: "echoing terminal status", orderID: 2, next: entity.OrderStatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := newOrderForTest(t, &recordingNotifier{})

			updated, err := orders.UpdateOrder(context.Background(), tt.orderID, &repository.OrderPatch{Status: &tt.next})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, updated.Status)
		})
	}
}

func TestOrderService_StatusEchoWithNotesPatch(t *testing.T) {
	// Admin forms resend the whole order, status included, when only the
	// notes changed. That must not trip the transition check.
	orders := newOrderForTest(t, &recordingNotifier{})

	status := entity.OrderStatusPending
	notes := "Ring the doorbell twice"
	updated, err := orders.UpdateOrder(context.Background(), 1, &repository.OrderPatch{Status: &status, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, updated.Status)
	assert.Equal(t, notes, updated.Notes)
}

func TestOrderService_NonStatusPatchSkipsTransitionCheck(t *testing.T) {
	orders := newOrderForTest(t, &recordingNotifier{})

	notes := "Extra napkins"
	updated, err := orders.UpdateOrder(context.Background(), 2, &repository.OrderPatch{Notes: &notes})
	require.NoError(t, err, "a delivered order can still have its details touched")
	assert.Equal(t, notes, updated.Notes)
}

func TestOrderService_UpdateUnknownOrder(t *testing.T) {
	orders := newOrderForTest(t, &recordingNotifier{})

	status := entity.OrderStatusConfirmed
	_, err := orders.UpdateOrder(context.Background(), 9999, &repository.OrderPatch{Status: &status})
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
