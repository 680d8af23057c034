package services

import (
	"context"
	"log/slog"

	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
)

// logNotificationDispatcher is the default NotificationDispatcher: it writes
// a structured log line for each event. Swapping in an SMS or push gateway
// only needs another implementation of the port.
type logNotificationDispatcher struct {
	BaseService
}

// NewLogNotificationDispatcher creates a dispatcher that logs events.
func NewLogNotificationDispatcher() portssvc.NotificationDispatcher {
	return &logNotificationDispatcher{}
}

var _ portssvc.NotificationDispatcher = (*logNotificationDispatcher)(nil)

func (d *logNotificationDispatcher) PaymentReceived(ctx context.Context, saleID, paymentID string) {
	d.LogInfo(ctx, "Notification: payment received",
		slog.String("sale_id", saleID),
		slog.String("payment_id", paymentID))
}

func (d *logNotificationDispatcher) SaleCompleted(ctx context.Context, saleID string) {
	d.LogInfo(ctx, "Notification: installment sale completed",
		slog.String("sale_id", saleID))
}
