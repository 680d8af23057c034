package services

import "context"

// NotificationDispatcher is handed identifiers after an engine operation has
// committed, to optionally send a reminder or receipt. Fire-and-forget: it
// must never participate in the engine's atomic unit, and its failures are
// not surfaced to the caller.
type NotificationDispatcher interface {
	PaymentReceived(ctx context.Context, saleID, paymentID string)
	SaleCompleted(ctx context.Context, saleID string)
}
