package pos

import "github.com/chrisdamba/restobill/internal/models"

// ComputeBilling totals up an order at the given tax rate. Sums are kept as
// raw float64 values; rounding to 2 decimals happens only when the receipt is
// formatted. Callers must not pass an empty order.
func ComputeBilling(order *models.Order, taxRatePercent float64) models.BillingResult {
	var subtotal float64
	for _, item := range order.Items() {
		subtotal += item.LineTotal()
	}
	taxAmount := subtotal * taxRatePercent / 100.0
	return models.BillingResult{
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal + taxAmount,
	}
}
