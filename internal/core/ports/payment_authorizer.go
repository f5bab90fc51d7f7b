package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/shipment"
)

// PaymentAuthorizer decides whether a payment is approved.
// A false result with a nil error is a decline; the checkout stays open for
// resubmission. An error means the authorization could not be performed.
type PaymentAuthorizer interface {
	Authorize(ctx context.Context, payment *shipment.Payment) (bool, error)
}
