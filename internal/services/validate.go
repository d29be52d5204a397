package services

import (
	"invoice-api/internal/models"
	"invoice-api/internal/transport/dto"
)

// Validation messages, in rule order. Only the first violated rule is ever
// reported; there is no error aggregation.
const (
	msgInvoiceNumberRequired = "Invoice Number is required."
	msgCustomerNameRequired  = "Customer Name is required."
	msgDateRequired          = "Date is required."
	msgDetailsNotArray       = "Details must be an array of line items."
	msgLineItemIncomplete    = "Each invoice detail must include description, quantity, and unit price."
)

// ValidateInvoice checks the structural shape of an invoice payload,
// short-circuiting on the first failure. A quantity or unit price of exactly
// zero counts as missing: the check is for a truthy value, not mere field
// presence.
func ValidateInvoice(req *dto.SaveInvoiceRequest) error {
	if req.InvoiceNumber == "" {
		return newValidationError(msgInvoiceNumberRequired)
	}
	if req.CustomerName == "" {
		return newValidationError(msgCustomerNameRequired)
	}
	if req.Date.IsZero() {
		return newValidationError(msgDateRequired)
	}
	if !req.Details.IsArray() {
		return newValidationError(msgDetailsNotArray)
	}
	for _, item := range req.Details.Items() {
		if err := validateLineItem(item); err != nil {
			return err
		}
	}
	return nil
}

func validateLineItem(item models.LineItem) error {
	if item.Description == "" || item.Quantity.IsZero() || item.UnitPrice.IsZero() {
		return newValidationError(msgLineItemIncomplete)
	}
	return nil
}
