package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"invoice-api/internal/api/handlers"
	"invoice-api/internal/api/routes"
	"invoice-api/internal/models"
	"invoice-api/internal/services"
	"invoice-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceService is a mock type for the services.InvoiceService interface
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Save(ctx context.Context, req *dto.SaveInvoiceRequest) (*models.Invoice, bool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Invoice), args.Bool(1), args.Error(2)
}

func (m *MockInvoiceService) Update(ctx context.Context, number string, req *dto.UpdateInvoiceRequest) (*models.Invoice, error) {
	args := m.Called(ctx, number, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockInvoiceService) List(ctx context.Context, req *dto.ListInvoicesRequest) (*services.InvoiceList, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InvoiceList), args.Error(1)
}

// Ensure mock implements the interface
var _ services.InvoiceService = (*MockInvoiceService)(nil)

func setupInvoiceRouter() (*gin.Engine, *MockInvoiceService) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockInvoiceService)
	handler := handlers.NewInvoiceHandler(mockService, validator.New())
	router := gin.New()
	routes.RegisterInvoiceRoutes(router.Group("/api"), handler)
	return router, mockService
}

func testInvoice(number string) *models.Invoice {
	return &models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: number,
		CustomerName:  "Acme",
		Date:          models.NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Details: []models.LineItem{
			{
				Description: "Widget",
				Quantity:    models.DecimalFromFloat(2),
				UnitPrice:   models.DecimalFromFloat(5),
				LineTotal:   models.DecimalFromFloat(10),
			},
		},
		TotalAmount: models.DecimalFromFloat(10),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestSaveInvoice_Created(t *testing.T) {
	router, mockService := setupInvoiceRouter()
	mockService.On("Save", mock.Anything, mock.Anything).Return(testInvoice("INV-1"), true, nil)

	body := `{"invoice_number": "INV-1", "customer_name": "Acme", "date": "2024-01-01", "details": [{"description": "Widget", "quantity": 2, "unit_price": 5}]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/invoice", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SaveInvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invoice created successfully", resp.Message)
	assert.Equal(t, "INV-1", resp.Invoice.InvoiceNumber)
	assert.Equal(t, "10", resp.Invoice.TotalAmount.String())
	mockService.AssertExpectations(t)
}

func TestSaveInvoice_UpdatedOnExistingNumber(t *testing.T) {
	router, mockService := setupInvoiceRouter()
	mockService.On("Save", mock.Anything, mock.Anything).Return(testInvoice("INV-1"), false, nil)

	body := `{"invoice_number": "INV-1", "customer_name": "Acme", "date": "2024-01-01", "details": []}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/invoice", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SaveInvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invoice updated successfully", resp.Message)
}

func TestSaveInvoice_ValidationFailure(t *testing.T) {
	router, mockService := setupInvoiceRouter()
	mockService.On("Save", mock.Anything, mock.Anything).
		Return(nil, false, &services.ValidationError{Message: "Customer Name is required."})

	body := `{"invoice_number": "INV-1", "date": "2024-01-01", "details": []}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/invoice", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Customer Name is required.", resp.Message)
}

func TestSaveInvoice_MalformedBody(t *testing.T) {
	router, mockService := setupInvoiceRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/invoice", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Save")
}

func TestListInvoices(t *testing.T) {
	router, mockService := setupInvoiceRouter()

	invoices := make([]models.Invoice, 10)
	for i := range invoices {
		invoices[i] = *testInvoice("INV-" + string(rune('A'+i)))
	}
	mockService.On("List", mock.Anything, mock.MatchedBy(func(req *dto.ListInvoicesRequest) bool {
		return req.Page == 1 && req.Limit == 10
	})).Return(&services.InvoiceList{
		Invoices:      invoices,
		TotalInvoices: 12,
		TotalPages:    2,
		CurrentPage:   1,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/invoice?page=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListInvoicesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Invoices, 10)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 12, resp.TotalInvoices)
}

func TestGetInvoiceByNumber_NotFound(t *testing.T) {
	router, mockService := setupInvoiceRouter()
	mockService.On("GetByNumber", mock.Anything, "NOPE").Return(nil, services.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/invoice/NOPE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invoice not found", resp.Message)
}

func TestUpdateInvoice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupInvoiceRouter()
		mockService.On("Update", mock.Anything, "INV-1", mock.Anything).Return(testInvoice("INV-1"), nil)

		body := `{"customer_name": "Acme", "date": "2024-01-01", "details": []}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/invoice/INV-1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, mockService := setupInvoiceRouter()
		mockService.On("Update", mock.Anything, "NOPE", mock.Anything).Return(nil, services.ErrNotFound)

		body := `{"customer_name": "Acme", "date": "2024-01-01", "details": []}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/invoice/NOPE", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteInvoice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupInvoiceRouter()
		mockService.On("Delete", mock.Anything, "INV-1").Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/api/invoice/INV-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invoice deleted successfully", resp.Message)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, mockService := setupInvoiceRouter()
		mockService.On("Delete", mock.Anything, "NOPE").Return(services.ErrNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/api/invoice/NOPE", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
