package domain

import "time"

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

// OrderEvent is the message published to Kafka after an order write commits.
// Consumers treat it as a pointer and re-read the order for full detail.
type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     int         `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	Total       int         `json:"total"`
	Timestamp   time.Time   `json:"timestamp"`
}
