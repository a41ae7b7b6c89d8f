package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
	"github.com/niksmo/warehouse/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.OrderEventsProducer = (*OrderEventsProducer)(nil)

// An OrderEventsProducer publishes [domain.OrderEvent] records
// keyed by the order identifier.
type OrderEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewOrderEventsProducer(
	opts ...ProducerOpt,
) (OrderEventsProducer, error) {
	const op = "NewOrderEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrderEventsProducer{}, opErr(err, op)
		}
	}
	return OrderEventsProducer{options.cl, options.encoder}, nil
}

func (p OrderEventsProducer) Close() {
	const op = "OrderEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p OrderEventsProducer) ProduceOrderEvent(
	ctx context.Context, evt domain.OrderEvent,
) error {
	const op = "OrderEventsProducer.ProduceOrderEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return opErr(err, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, op)
	}
	return nil
}

func (p OrderEventsProducer) createRecord(
	evt domain.OrderEvent,
) (*kgo.Record, error) {
	const op = "OrderEventsProducer.createRecord"

	v, err := p.encoder.Encode(orderEventToSchemaV1(evt))
	if err != nil {
		return nil, opErr(err, op)
	}

	key := []byte(strconv.Itoa(evt.OrderID))
	return &kgo.Record{Key: key, Value: v}, nil
}

func orderEventToSchemaV1(v domain.OrderEvent) (s schema.OrderEventV1) {
	s.Kind = string(v.Kind)
	s.OrderID = int64(v.OrderID)
	s.Username = v.Username
	s.TotalAmount = v.TotalAmount
	s.Status = string(v.Status)
	s.OccurredOnUTC = v.OccurredOnUTC
	return
}
