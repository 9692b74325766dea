package notifier

import (
	"strings"
	"testing"
)

func TestRenderWelcome(t *testing.T) {
	subject, body := render(KindWelcome, map[string]any{"name": "Maria"})
	if subject != "Welcome to El Criollo Restaurant!" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "Maria") {
		t.Fatalf("body should greet the recipient, got %q", body)
	}
}

func TestRenderOrderConfirmation(t *testing.T) {
	subject, body := render(KindOrderConfirmation, map[string]any{"name": "Pedro", "order_id": int64(5)})
	if subject != "Your order #5 is confirmed" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "Pedro") || !strings.Contains(body, "#5") {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestRenderOrderStatus(t *testing.T) {
	cases := []struct {
		state string
		want  string
	}{
		{"Preparing", "Order #5 is being prepared in the kitchen."},
		{"Ready", "Order #5 is ready to serve!"},
		{"Delivered", "Order #5 has been delivered."},
		{"Cancelled", "Order #5 has been cancelled."},
		{"Paused", "Order #5 changed state to Paused."},
	}
	for _, tc := range cases {
		t.Run(tc.state, func(t *testing.T) {
			subject, body := render(KindOrderStatus, map[string]any{"order_id": int64(5), "state": tc.state})
			if subject != "Order #5 - "+tc.state {
				t.Fatalf("unexpected subject: %q", subject)
			}
			if body != tc.want {
				t.Fatalf("unexpected body: %q", body)
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	subject, body := render("table_reminder", nil)
	if subject != "El Criollo Restaurant" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if body != "Notification: table_reminder" {
		t.Fatalf("unexpected body: %q", body)
	}
}
