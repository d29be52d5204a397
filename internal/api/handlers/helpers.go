package handlers

import (
	"fmt"

	"invoice-api/internal/models"
	"invoice-api/internal/services"
	"invoice-api/internal/transport/dto"

	"github.com/go-playground/validator"
	"github.com/samber/lo"
)

// FormatValidationErrors flattens validator errors into a field->message map.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		default:
			errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		}
	}
	return errorsMap
}

func mapLineItemToResponse(item models.LineItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		LineTotal:   item.LineTotal,
	}
}

// MapInvoiceModelToInvoiceResponse converts a models.Invoice to a dto.InvoiceResponse
func MapInvoiceModelToInvoiceResponse(invoice *models.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		CustomerName:  invoice.CustomerName,
		Date:          invoice.Date,
		Details:       lo.Map(invoice.Details, func(item models.LineItem, _ int) dto.LineItemResponse { return mapLineItemToResponse(item) }),
		TotalAmount:   invoice.TotalAmount,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}

// MapInvoiceListToResponse converts a service list result to the paginated
// response envelope.
func MapInvoiceListToResponse(list *services.InvoiceList) dto.ListInvoicesResponse {
	return dto.ListInvoicesResponse{
		Invoices: lo.Map(list.Invoices, func(inv models.Invoice, _ int) dto.InvoiceResponse {
			return MapInvoiceModelToInvoiceResponse(&inv)
		}),
		TotalPages:    list.TotalPages,
		CurrentPage:   list.CurrentPage,
		TotalInvoices: list.TotalInvoices,
	}
}
