package pos

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrisdamba/restobill/internal/models"
)

// ReceiptFormatter renders the textual receipt that is shown on screen and
// saved to disk. It has no side effects.
type ReceiptFormatter struct {
	RestaurantName string
	Currency       string
}

// Format produces the receipt text: header, date and order id lines, one line
// per order item, then the totals block. All amounts are rounded to 2 decimal
// places here and nowhere earlier. Must not be called with an empty order.
func (f ReceiptFormatter) Format(order *models.Order, bill models.BillingResult, timestamp time.Time, taxRatePercent float64) string {
	var b strings.Builder
	b.WriteString(f.RestaurantName + "\n")
	b.WriteString("Date: " + timestamp.Format("Mon Jan 2 15:04:05 2006") + "\n")
	b.WriteString("Order: " + order.ID + "\n\n")

	for _, item := range order.Items() {
		fmt.Fprintf(&b, "%-20s x%2d  %s %.2f\n", item.Name, item.Quantity, f.Currency, item.LineTotal())
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s %.2f\n", f.Currency, bill.Subtotal)
	fmt.Fprintf(&b, "GST (%g%%): %s %.2f\n", taxRatePercent, f.Currency, bill.TaxAmount)
	fmt.Fprintf(&b, "Grand Total: %s %.2f\n", f.Currency, bill.GrandTotal)
	return b.String()
}

// ReceiptFileName derives the saved receipt's file name from its timestamp.
func ReceiptFileName(timestamp time.Time) string {
	return fmt.Sprintf("receipt_%s.txt", timestamp.Format("20060102_150405"))
}
