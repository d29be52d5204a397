package services_test

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"invoice-api/internal/cache"
	"invoice-api/internal/models"
	"invoice-api/internal/services"
	"invoice-api/internal/storage"
	"invoice-api/internal/transport/dto"

	"github.com/stretchr/testify/require"
)

// fakeInvoiceRepo is an in-memory storage.InvoiceRepository used by the
// service tests. It tracks write calls so tests can assert that validation
// failures never reach the repository.
type fakeInvoiceRepo struct {
	invoices   map[string]models.Invoice
	writeCalls int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]models.Invoice)}
}

var _ storage.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func (f *fakeInvoiceRepo) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	inv, ok := f.invoices[number]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := inv
	return &copied, nil
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	f.writeCalls++
	if _, ok := f.invoices[invoice.InvoiceNumber]; ok {
		return nil, storage.ErrConflict
	}
	stored := *invoice
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.invoices[invoice.InvoiceNumber] = stored
	copied := stored
	return &copied, nil
}

func (f *fakeInvoiceRepo) Replace(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	f.writeCalls++
	existing, ok := f.invoices[invoice.InvoiceNumber]
	if !ok {
		return nil, storage.ErrNotFound
	}
	stored := *invoice
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	f.invoices[invoice.InvoiceNumber] = stored
	copied := stored
	return &copied, nil
}

func (f *fakeInvoiceRepo) DeleteByNumber(ctx context.Context, number string) (bool, error) {
	f.writeCalls++
	if _, ok := f.invoices[number]; !ok {
		return false, nil
	}
	delete(f.invoices, number)
	return true, nil
}

func (f *fakeInvoiceRepo) List(ctx context.Context, page, pageSize int) ([]models.Invoice, int, error) {
	if pageSize <= 0 {
		pageSize = 10
	}
	all := make([]models.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		all = append(all, inv)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date.Time)
	})
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > len(all) {
		return []models.Invoice{}, len(all), nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func setupInvoiceServiceTest(t *testing.T) (context.Context, services.InvoiceService, *fakeInvoiceRepo) {
	t.Helper()
	repo := newFakeInvoiceRepo()
	// nil Redis client disables the list cache
	svc := services.NewInvoiceService(repo, cache.NewInvoiceListCache(nil))
	return context.Background(), svc, repo
}

func jsonUnmarshal(raw string, v any) error {
	return json.Unmarshal([]byte(raw), v)
}

// saveRequestFromJSON builds a SaveInvoiceRequest from raw JSON, exercising
// the same decoding path the HTTP handler uses.
func saveRequestFromJSON(t *testing.T, raw string) *dto.SaveInvoiceRequest {
	t.Helper()
	var req dto.SaveInvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	return &req
}
