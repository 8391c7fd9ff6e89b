package notifier

import "time"

type EventName string

const (
	EventOrderCreated   EventName = `order.created`
	EventOrderCompleted EventName = `order.completed`
	EventOrderCancelled EventName = `order.cancelled`
)

// Event is the payload posted to the webhook address after a committed
// order mutation.
type Event struct {
	Name        EventName `json:"event"`
	OrderID     string    `json:"order_id"`
	AccountID   string    `json:"account_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Discard is the notifier used when no webhook address is configured.
type Discard struct{}

func (Discard) Publish(_ Event) {}
