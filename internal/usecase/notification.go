package usecase

import "context"

// Notification kinds emitted by the use cases.
const (
	NotifyWelcome           = "welcome"
	NotifyOrderConfirmation = "order_confirmation"
	NotifyOrderStatus       = "order_status"
)

// NotificationSink dispatches a templated message to a recipient. The result
// flag reports delivery to the transport; a false outcome degrades the
// operation result but never fails it.
type NotificationSink interface {
	Send(ctx context.Context, kind, recipient string, data map[string]any) bool
}
