package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.Orders = (*Orders)(nil)

type Orders struct {
	storage port.OrdersStorage
	events  port.OrderEventsProducer
}

func NewOrders(
	storage port.OrdersStorage, events port.OrderEventsProducer,
) Orders {
	return Orders{storage, events}
}

// ListOrders returns a page of orders, most recently created first.
func (s Orders) ListOrders(
	ctx context.Context, page, pageSize int,
) (domain.Page[domain.Order], error) {
	const op = "Orders.ListOrders"

	if err := ctx.Err(); err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("%s: %w", op, err)
	}

	os, err := s.storage.List(ctx)
	if err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Paginate(os, page, pageSize), nil
}

// CreateOrder computes the line amounts and the order total,
// stores the order in Active status and publishes a created event.
func (s Orders) CreateOrder(
	ctx context.Context, draft domain.OrderDraft,
) (int, error) {
	const op = "Orders.CreateOrder"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.validateDraft(draft); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	lines := make([]domain.OrderLine, 0, len(draft.Products))
	for _, l := range draft.Products {
		lines = append(lines, domain.NewOrderLine(
			l.ProductID, l.ProductName,
			l.Quantity, l.UnitPrice, l.PurchasePrice,
		))
	}

	o := domain.Order{
		Username:          draft.Username,
		PaymentType:       draft.PaymentType,
		Comment:           draft.Comment,
		LoyaltyCardNumber: draft.LoyaltyCardNumber,
		TotalAmount:       domain.OrderTotal(lines),
		Status:            domain.OrderActive,
		CreatedOnUTC:      time.Now().UTC(),
		Products:          lines,
	}

	id, err := s.storage.Create(ctx, o)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	o.ID = id
	s.publishEvent(ctx, domain.OrderEventCreated, o)

	return id, nil
}

// CompleteOrder moves the order to the terminal Completed status
// and stamps the completion time.
func (s Orders) CompleteOrder(ctx context.Context, id int) error {
	const op = "Orders.CompleteOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var completed domain.Order
	err := s.storage.Mutate(ctx, id, func(o *domain.Order) error {
		if err := o.Complete(time.Now().UTC()); err != nil {
			return err
		}
		completed = *o
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publishEvent(ctx, domain.OrderEventCompleted, completed)
	return nil
}

// CancelOrder moves the order to the terminal Cancelled status.
func (s Orders) CancelOrder(ctx context.Context, id int) error {
	const op = "Orders.CancelOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var cancelled domain.Order
	err := s.storage.Mutate(ctx, id, func(o *domain.Order) error {
		if err := o.Cancel(); err != nil {
			return err
		}
		cancelled = *o
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publishEvent(ctx, domain.OrderEventCancelled, cancelled)
	return nil
}

func (s Orders) validateDraft(draft domain.OrderDraft) error {
	if draft.Username == "" || len(draft.Products) == 0 {
		return fmt.Errorf(
			"username and products are required: %w", domain.ErrValidation,
		)
	}
	for _, l := range draft.Products {
		if l.ProductID <= 0 || l.Quantity <= 0 ||
			l.UnitPrice < 0 || l.PurchasePrice < 0 {
			return fmt.Errorf(
				"order line for product %d is invalid: %w",
				l.ProductID, domain.ErrValidation,
			)
		}
	}
	return nil
}

// publishEvent emits an analytics record. Publish failures
// never fail the originating request.
func (s Orders) publishEvent(
	ctx context.Context, kind domain.OrderEventKind, o domain.Order,
) {
	const op = "Orders.publishEvent"

	if s.events == nil {
		return
	}

	evt := domain.OrderEvent{
		Kind:          kind,
		OrderID:       o.ID,
		Username:      o.Username,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		OccurredOnUTC: time.Now().UTC(),
	}

	if err := s.events.ProduceOrderEvent(ctx, evt); err != nil {
		slog.Error("failed to produce order event",
			"op", op, "kind", kind, "orderId", o.ID, "err", err)
	}
}
