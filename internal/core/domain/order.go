package domain

import "time"

type PaymentType string

const (
	PaymentCard     PaymentType = "Card"
	PaymentCash     PaymentType = "Cash"
	PaymentTransfer PaymentType = "Transfer"
)

type OrderStatus string

const (
	OrderActive    OrderStatus = "Active"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

type (
	Order struct {
		ID                int
		Username          string
		PaymentType       PaymentType
		Comment           string
		LoyaltyCardNumber string
		TotalAmount       float64
		Status            OrderStatus
		CreatedOnUTC      time.Time
		CompletedOnUTC    time.Time
		Products          []OrderLine
	}

	OrderLine struct {
		ProductID          int
		ProductName        string
		Quantity           int
		UnitPrice          float64
		PurchasePrice      float64
		TotalPrice         float64
		TotalPurchasePrice float64
		Profit             float64
	}
)

// NewOrderLine computes the derived line amounts:
// totalPrice, totalPurchasePrice and profit.
func NewOrderLine(
	productID int, productName string,
	quantity int, unitPrice, purchasePrice float64,
) OrderLine {
	totalPrice := unitPrice * float64(quantity)
	totalPurchase := purchasePrice * float64(quantity)
	return OrderLine{
		ProductID:          productID,
		ProductName:        productName,
		Quantity:           quantity,
		UnitPrice:          unitPrice,
		PurchasePrice:      purchasePrice,
		TotalPrice:         totalPrice,
		TotalPurchasePrice: totalPurchase,
		Profit:             totalPrice - totalPurchase,
	}
}

// OrderTotal sums the total price over the order lines.
func OrderTotal(lines []OrderLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.TotalPrice
	}
	return total
}

// Complete moves an active order to the terminal Completed status
// and stamps the completion time.
//
// Returns [ErrOrderFinished] if the order is already terminal.
func (o *Order) Complete(now time.Time) error {
	if o.Status != OrderActive {
		return ErrOrderFinished
	}
	o.Status = OrderCompleted
	o.CompletedOnUTC = now
	return nil
}

// Cancel moves an active order to the terminal Cancelled status.
// The completion time stays unset.
//
// Returns [ErrOrderFinished] if the order is already terminal.
func (o *Order) Cancel() error {
	if o.Status != OrderActive {
		return ErrOrderFinished
	}
	o.Status = OrderCancelled
	return nil
}

type (
	OrderDraft struct {
		Username          string
		PaymentType       PaymentType
		Comment           string
		LoyaltyCardNumber string
		Products          []OrderLineDraft
	}

	OrderLineDraft struct {
		ProductID     int
		ProductName   string
		Quantity      int
		UnitPrice     float64
		PurchasePrice float64
	}
)
