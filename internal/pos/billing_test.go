package pos

import (
	"math"
	"testing"
	"time"

	"github.com/chrisdamba/restobill/internal/models"
)

func buildOrder(t *testing.T, lines []struct {
	item models.MenuItem
	qty  int
}) *models.Order {
	t.Helper()
	order := models.NewOrder(time.Now())
	for _, l := range lines {
		if err := order.AddItem(l.item, l.qty); err != nil {
			t.Fatalf("AddItem(%q, %d): %v", l.item.Name, l.qty, err)
		}
	}
	return order
}

func TestComputeBilling(t *testing.T) {
	burger := models.MenuItem{ID: 2, Name: "Veg Burger", Price: 99}
	fries := models.MenuItem{ID: 3, Name: "French Fries", Price: 79}

	order := buildOrder(t, []struct {
		item models.MenuItem
		qty  int
	}{
		{burger, 2},
		{fries, 1},
	})

	bill := ComputeBilling(order, 5.0)

	if got := math.Round(bill.Subtotal*100) / 100; got != 277.00 {
		t.Errorf("subtotal = %v, want 277.00", got)
	}
	if got := math.Round(bill.TaxAmount*100) / 100; got != 13.85 {
		t.Errorf("tax = %v, want 13.85", got)
	}
	if got := math.Round(bill.GrandTotal*100) / 100; got != 290.85 {
		t.Errorf("grand total = %v, want 290.85", got)
	}
}

func TestComputeBillingTaxRelation(t *testing.T) {
	rates := []float64{0, 5, 12.5, 18}
	item := models.MenuItem{ID: 1, Name: "Margherita Pizza", Price: 199}
	order := buildOrder(t, []struct {
		item models.MenuItem
		qty  int
	}{
		{item, 3},
	})

	for _, rate := range rates {
		bill := ComputeBilling(order, rate)
		want := bill.Subtotal + bill.Subtotal*rate/100
		if math.Abs(bill.GrandTotal-want) > 1e-9 {
			t.Errorf("rate %v: grand total = %v, want %v", rate, bill.GrandTotal, want)
		}
	}
}

func TestComputeBillingZeroQuantityRejectedUpstream(t *testing.T) {
	order := models.NewOrder(time.Now())
	item := models.MenuItem{ID: 5, Name: "Cold Coffee", Price: 89}

	for _, qty := range []int{0, -1, -10} {
		if err := order.AddItem(item, qty); err != models.ErrInvalidQuantity {
			t.Errorf("AddItem qty %d: err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
	if !order.IsEmpty() {
		t.Errorf("order has %d items after rejected adds", len(order.Items()))
	}
}

func TestDuplicateItemsStaySeparateLines(t *testing.T) {
	burger := models.MenuItem{ID: 2, Name: "Veg Burger", Price: 99}
	order := buildOrder(t, []struct {
		item models.MenuItem
		qty  int
	}{
		{burger, 2},
		{burger, 3},
	})

	items := order.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 separate lines, got %d", len(items))
	}
	if items[0].Quantity != 2 || items[1].Quantity != 3 {
		t.Errorf("line quantities = %d, %d; want 2, 3", items[0].Quantity, items[1].Quantity)
	}
}
