package payments_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftdrop/internal/adapters/out/payments"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/shipment"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPayment(t *testing.T, cvv string) *shipment.Payment {
	t.Helper()
	payment, err := shipment.NewPayment(
		kernel.NewUUID(), "Jane Doe", "4111111111111111", "credit", "visa", 12, 2030, cvv)
	require.NoError(t, err)
	return payment
}

func TestCVVAuthorizer_Authorize(t *testing.T) {
	authorizer := payments.NewCVVAuthorizer(testLogger())

	t.Run("sentinel cvv approves", func(t *testing.T) {
		approved, err := authorizer.Authorize(context.Background(), newPayment(t, "123"))

		require.NoError(t, err)
		assert.True(t, approved)
	})

	t.Run("other cvv declines", func(t *testing.T) {
		approved, err := authorizer.Authorize(context.Background(), newPayment(t, "999"))

		require.NoError(t, err)
		assert.False(t, approved)
	})

	t.Run("unconstructed payment errors", func(t *testing.T) {
		_, err := authorizer.Authorize(context.Background(), &shipment.Payment{})

		require.ErrorIs(t, err, shipment.ErrPaymentIsNotConstructed)
	})
}
