package test

import "context"

// SentMessage captures one notification dispatched through the sink stub.
type SentMessage struct {
	Kind      string
	Recipient string
	Data      map[string]any
}

// NotificationSinkStub records sent notifications and returns a
// configurable outcome.
type NotificationSinkStub struct {
	Sent   []SentMessage
	Result bool
	SendFn func(context.Context, string, string, map[string]any) bool
}

// NewNotificationSinkStub constructs a sink that reports success.
func NewNotificationSinkStub() *NotificationSinkStub {
	return &NotificationSinkStub{Result: true}
}

// Send records the message and reports the configured outcome.
func (s *NotificationSinkStub) Send(ctx context.Context, kind, recipient string, data map[string]any) bool {
	if s.SendFn != nil {
		return s.SendFn(ctx, kind, recipient, data)
	}
	s.Sent = append(s.Sent, SentMessage{Kind: kind, Recipient: recipient, Data: data})
	return s.Result
}
