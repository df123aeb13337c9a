package notify

import "log"

// Notifier delivers customer-facing notifications about an order.
type Notifier interface {
	NotifyCustomer(orderID, message string) error
}

// LogNotifier writes notifications to the process log. It stands in for a
// mail or SMS gateway.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyCustomer logs the notification.
func (LogNotifier) NotifyCustomer(orderID, message string) error {
	log.Printf("[Notify] order=%s: %s", orderID, message)
	return nil
}
