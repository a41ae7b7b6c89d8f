package domain

import "time"

type OrderEventKind string

const (
	OrderEventCreated   OrderEventKind = "created"
	OrderEventCompleted OrderEventKind = "completed"
	OrderEventCancelled OrderEventKind = "cancelled"
)

// OrderEvent is an analytics record published on each order
// lifecycle transition.
type OrderEvent struct {
	Kind          OrderEventKind
	OrderID       int
	Username      string
	TotalAmount   float64
	Status        OrderStatus
	OccurredOnUTC time.Time
}
