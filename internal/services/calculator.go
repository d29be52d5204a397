package services

import (
	"invoice-api/internal/models"

	"github.com/shopspring/decimal"
)

// LineTotal computes a line item's total as quantity * unit_price. The
// stored line_total is always derived server-side; whatever the client sent
// is discarded.
func LineTotal(quantity, unitPrice models.Decimal) models.Decimal {
	return models.NewDecimal(quantity.Mul(unitPrice.Decimal))
}

// InvoiceTotal sums the line totals of all details. Items whose line_total
// is missing get it recomputed from quantity * unit_price. Numeric fields
// that failed to parse at the boundary have decoded as zero and simply
// contribute nothing; aggregation is tolerant, not strict.
func InvoiceTotal(details []models.LineItem) models.Decimal {
	total := decimal.Zero
	for _, item := range details {
		lineTotal := item.LineTotal.Decimal
		if lineTotal.IsZero() {
			lineTotal = item.Quantity.Mul(item.UnitPrice.Decimal)
		}
		total = total.Add(lineTotal)
	}
	return models.NewDecimal(total)
}

// PriceLineItems returns a copy of details with every line_total recomputed.
// Applied on every write so stored totals never drift from their inputs.
func PriceLineItems(details []models.LineItem) []models.LineItem {
	priced := make([]models.LineItem, len(details))
	for i, item := range details {
		item.LineTotal = LineTotal(item.Quantity, item.UnitPrice)
		priced[i] = item
	}
	return priced
}
