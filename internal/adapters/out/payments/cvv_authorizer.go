// Package payments provides the sentinel implementation of the
// PaymentAuthorizer port. No card network is involved: a fixed CVV approves,
// everything else declines. A real gateway integration replaces this adapter
// without touching the checkout workflow.
package payments

import (
	"context"
	"log/slog"

	"swiftdrop/internal/core/domain/model/shipment"
)

const approvedCVV = "123"

// CVVAuthorizer approves payments whose CVV matches the sentinel value.
type CVVAuthorizer struct {
	logger *slog.Logger
}

// NewCVVAuthorizer creates the sentinel payment authorizer.
func NewCVVAuthorizer(logger *slog.Logger) *CVVAuthorizer {
	return &CVVAuthorizer{logger: logger}
}

// Authorize reports whether the payment is approved. Declines are logged,
// never returned as errors.
func (a *CVVAuthorizer) Authorize(ctx context.Context, payment *shipment.Payment) (bool, error) {
	if err := payment.Validate(); err != nil {
		return false, err
	}

	approved := payment.CVV() == approvedCVV
	if !approved {
		a.logger.InfoContext(ctx, "payment declined by sentinel authorizer",
			"paymentId", payment.ID().String())
	}

	return approved, nil
}
