package models

import (
	"errors"
	"time"

	"github.com/lucsky/cuid"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// OrderItem is one line of an order. Name and UnitPrice are copied from the
// menu item at the time it was added, so later catalog edits don't change an
// order already in progress.
type OrderItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func (oi OrderItem) LineTotal() float64 {
	return oi.UnitPrice * float64(oi.Quantity)
}

// Order collects the line items of a single ordering session, in the order
// they were added.
type Order struct {
	ID       string    `json:"id"`
	PlacedAt time.Time `json:"placed_at"`

	items []OrderItem
}

func NewOrder(placedAt time.Time) *Order {
	return &Order{
		ID:       cuid.New(),
		PlacedAt: placedAt,
	}
}

// AddItem appends a new line for the given menu item. Adding the same item
// twice produces two separate lines; lines are never merged.
func (o *Order) AddItem(item MenuItem, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	o.items = append(o.items, OrderItem{
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  quantity,
	})
	return nil
}

func (o *Order) Items() []OrderItem {
	return o.items
}

func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// BillingResult holds the computed totals for one order. Values are raw
// float64 sums; rounding happens at presentation time only.
type BillingResult struct {
	Subtotal   float64 `json:"subtotal"`
	TaxAmount  float64 `json:"tax_amount"`
	GrandTotal float64 `json:"grand_total"`
}
