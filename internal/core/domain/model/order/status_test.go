package order_test

import (
	"fmt"
	"testing"

	"foodsewa/internal/core/domain/model/order"
	"foodsewa/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.StatusPending))
		assert.Equal(t, 2, int(order.StatusConfirmed))
		assert.Equal(t, 3, int(order.StatusPreparing))
		assert.Equal(t, 4, int(order.StatusReady))
		assert.Equal(t, 5, int(order.StatusDelivered))
		assert.Equal(t, 6, int(order.StatusCancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.StatusPending,
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusDelivered,
			order.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusUnknown, order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.StatusUnknown:   "unknown",
		order.StatusPending:   "pending",
		order.StatusConfirmed: "confirmed",
		order.StatusPreparing: "preparing",
		order.StatusReady:     "ready",
		order.StatusDelivered: "delivered",
		order.StatusCancelled: "cancelled",
		order.Status(42):      "unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_ForwardTransitions(t *testing.T) {
	t.Run("happy path walks the full lifecycle", func(t *testing.T) {
		confirmed, err := order.StatusPending.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, confirmed)

		preparing, err := confirmed.StartPreparing()
		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, preparing)

		ready, err := preparing.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.StatusReady, ready)

		delivered, err := ready.MarkDelivered()
		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, delivered)
		assert.True(t, delivered.IsTerminal())
	})

	t.Run("transitions cannot skip states", func(t *testing.T) {
		_, err := order.StatusPending.StartPreparing()
		require.Error(t, err)

		_, err = order.StatusPending.MarkReady()
		require.Error(t, err)

		_, err = order.StatusConfirmed.MarkDelivered()
		require.Error(t, err)
	})

	t.Run("transitions cannot go backwards", func(t *testing.T) {
		_, err := order.StatusDelivered.Confirm()
		require.Error(t, err)

		_, err = order.StatusReady.StartPreparing()
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("cancellation is permitted in early states", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusPending, order.StatusConfirmed} {
			cancelled, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.StatusCancelled, cancelled)
			assert.True(t, status.CanCancel())
		}
	})

	t.Run("cancellation is rejected once preparation starts", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusPreparing,
			order.StatusReady,
			order.StatusDelivered,
			order.StatusCancelled,
		} {
			_, err := status.Cancel()

			require.Error(t, err)
			assert.False(t, status.CanCancel())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	cases := map[string]order.Status{
		"pending":   order.StatusPending,
		"confirmed": order.StatusConfirmed,
		"preparing": order.StatusPreparing,
		"ready":     order.StatusReady,
		"delivered": order.StatusDelivered,
		"cancelled": order.StatusCancelled,
	}

	for s, expected := range cases {
		status, err := order.StatusFromString(s)
		require.NoError(t, err)
		assert.Equal(t, expected, status)
	}

	for _, s := range []string{"", "unknown", "Pending", "shipped"} {
		_, err := order.StatusFromString(s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}
