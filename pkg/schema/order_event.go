package schema

import "time"

const OrderEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "warehouse",
	"name": "order_event",
	"fields" : [
		{"name": "kind", "type": "string"},
		{"name": "order_id", "type": "long"},
		{"name": "username", "type": "string"},
		{"name": "total_amount", "type": "double"},
		{"name": "status", "type": "string"},
		{"name": "occurred_on_utc",
			"type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type OrderEventV1 struct {
	Kind          string    `avro:"kind"`
	OrderID       int64     `avro:"order_id"`
	Username      string    `avro:"username"`
	TotalAmount   float64   `avro:"total_amount"`
	Status        string    `avro:"status"`
	OccurredOnUTC time.Time `avro:"occurred_on_utc"`
}
