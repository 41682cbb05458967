package delivery

import (
	"errors"
	"strings"

	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// via the NewLineItem constructor.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrOrderIsNotConstructed is returned when an Order was not created
	// via the NewOrder constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// LineItem is one product line of the customer order attached to a delivery.
// It is read-only from the panel's perspective; the backend owns its lifecycle.
type LineItem struct {
	productName string
	quantity    int
	unitPrice   decimal.Decimal

	isConstructed bool
}

// NewLineItem creates a validated LineItem.
// Product name must be non-empty, quantity positive and unit price non-negative.
func NewLineItem(productName string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if strings.TrimSpace(productName) == "" {
		return LineItem{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidError("quantity")
	}
	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidError("unitPrice")
	}
	return LineItem{
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// ProductName returns the product's display name.
func (li LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the unit price.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

// Order is the read-only snapshot of the customer order a delivery belongs to.
// A delivery belongs to exactly one order. The panel never mutates orders;
// they are consumed as nested data attached to a delivery.
type Order struct {
	id           kernel.UUID
	customerName string
	items        []LineItem

	isConstructed bool
}

// NewOrder creates a validated read-only order snapshot.
//
// Parameters:
//   - id: Unique identifier of the order (must be valid UUID)
//   - customerName: Customer display name (must be non-empty)
//   - items: Product lines (may be empty when the backend omits them)
func NewOrder(id kernel.UUID, customerName string, items []LineItem) (Order, error) {
	if err := id.Validate(); err != nil {
		return Order{}, err
	}
	if strings.TrimSpace(customerName) == "" {
		return Order{}, errs.NewValueIsRequiredError("customerName")
	}
	for _, item := range items {
		if !item.isConstructed {
			return Order{}, ErrLineItemIsNotConstructed
		}
	}
	return Order{
		id:            id,
		customerName:  customerName,
		items:         append([]LineItem(nil), items...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was constructed via NewOrder.
func (o Order) Validate() error {
	if !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's display name.
func (o Order) CustomerName() string {
	return o.customerName
}

// Items returns a copy of the order's product lines.
func (o Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Total returns the sum of all line subtotals.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
