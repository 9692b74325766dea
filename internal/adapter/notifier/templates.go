package notifier

import "fmt"

// Notification kinds understood by the renderer.
const (
	KindWelcome           = "welcome"
	KindOrderConfirmation = "order_confirmation"
	KindOrderStatus       = "order_status"
)

// render builds the subject and body for a message kind. Unknown kinds get
// a generic envelope so new kinds degrade gracefully instead of dropping.
func render(kind string, data map[string]any) (subject, body string) {
	name, _ := data["name"].(string)
	orderID := data["order_id"]
	state, _ := data["state"].(string)

	switch kind {
	case KindWelcome:
		subject = "Welcome to El Criollo Restaurant!"
		body = fmt.Sprintf("Hello %s, your account is ready. ¡Bienvenido!", name)
	case KindOrderConfirmation:
		subject = fmt.Sprintf("Your order #%v is confirmed", orderID)
		body = fmt.Sprintf("Hello %s, order #%v has been placed and sent to the kitchen.", name, orderID)
	case KindOrderStatus:
		subject = fmt.Sprintf("Order #%v - %s", orderID, state)
		body = statusLine(orderID, state)
	default:
		subject = "El Criollo Restaurant"
		body = fmt.Sprintf("Notification: %s", kind)
	}
	return subject, body
}

func statusLine(orderID any, state string) string {
	switch state {
	case "Preparing":
		return fmt.Sprintf("Order #%v is being prepared in the kitchen.", orderID)
	case "Ready":
		return fmt.Sprintf("Order #%v is ready to serve!", orderID)
	case "Delivered":
		return fmt.Sprintf("Order #%v has been delivered.", orderID)
	case "Cancelled":
		return fmt.Sprintf("Order #%v has been cancelled.", orderID)
	}
	return fmt.Sprintf("Order #%v changed state to %s.", orderID, state)
}
