package models

import (
	"testing"
	"time"
)

func TestNewOrderIsEmpty(t *testing.T) {
	order := NewOrder(time.Now())
	if !order.IsEmpty() {
		t.Error("new order is not empty")
	}
	if order.ID == "" {
		t.Error("new order has no id")
	}
}

func TestAddItemValidatesQuantity(t *testing.T) {
	tests := []struct {
		qty     int
		wantErr error
		wantLen int
	}{
		{1, nil, 1},
		{5, nil, 2},
		{0, ErrInvalidQuantity, 2},
		{-3, ErrInvalidQuantity, 2},
	}

	order := NewOrder(time.Now())
	item := MenuItem{ID: 1, Name: "Margherita Pizza", Price: 199}
	for _, tt := range tests {
		err := order.AddItem(item, tt.qty)
		if err != tt.wantErr {
			t.Errorf("AddItem(qty=%d) err = %v, want %v", tt.qty, err, tt.wantErr)
		}
		if len(order.Items()) != tt.wantLen {
			t.Errorf("AddItem(qty=%d): %d items, want %d", tt.qty, len(order.Items()), tt.wantLen)
		}
	}
}

func TestOrderItemCapturesPriceAtAddTime(t *testing.T) {
	order := NewOrder(time.Now())
	item := MenuItem{ID: 2, Name: "Veg Burger", Price: 99}
	if err := order.AddItem(item, 1); err != nil {
		t.Fatal(err)
	}

	// later catalog edits must not reach into an in-flight order
	item.Price = 500
	item.Name = "Deluxe Burger"

	line := order.Items()[0]
	if line.Name != "Veg Burger" || line.UnitPrice != 99 {
		t.Errorf("line = %+v, want the values at add time", line)
	}
}

func TestLineTotal(t *testing.T) {
	line := OrderItem{Name: "French Fries", UnitPrice: 79, Quantity: 3}
	if got := line.LineTotal(); got != 237 {
		t.Errorf("LineTotal = %v, want 237", got)
	}
}
