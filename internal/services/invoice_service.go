package services

import (
	"context"
	"errors"
	"log"

	"invoice-api/internal/cache"
	"invoice-api/internal/models"
	"invoice-api/internal/storage"
	"invoice-api/internal/transport/dto"

	"github.com/google/uuid"
)

const defaultPageSize = 10

type invoiceService struct {
	invoiceRepo storage.InvoiceRepository
	listCache   *cache.InvoiceListCache
}

// NewInvoiceService wires the upsert/list orchestration over a repository.
// listCache may be built from a nil Redis client, which disables caching.
func NewInvoiceService(invoiceRepo storage.InvoiceRepository, listCache *cache.InvoiceListCache) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		listCache:   listCache,
	}
}

// Save implements the create-or-update duality of the POST path: the
// invoice_number is the business key, and a colliding number turns the
// create into an in-place update. Validation runs before any repository
// access; totals are recomputed over the incoming details on every write.
func (s *invoiceService) Save(ctx context.Context, req *dto.SaveInvoiceRequest) (*models.Invoice, bool, error) {
	if err := ValidateInvoice(req); err != nil {
		return nil, false, err
	}

	details := PriceLineItems(req.Details.Items())
	total := InvoiceTotal(details)

	existing, err := s.invoiceRepo.GetByNumber(ctx, req.InvoiceNumber)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, false, mapRepoError(err, "looking up invoice for save")
	}

	if existing != nil {
		existing.CustomerName = req.CustomerName
		existing.Date = req.Date
		existing.Details = details
		existing.TotalAmount = total

		updated, err := s.invoiceRepo.Replace(ctx, existing)
		if err != nil {
			return nil, false, mapRepoError(err, "updating invoice")
		}
		s.listCache.Invalidate(ctx)
		return updated, false, nil
	}

	invoiceToCreate := &models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: req.InvoiceNumber,
		CustomerName:  req.CustomerName,
		Date:          req.Date,
		Details:       details,
		TotalAmount:   total,
	}
	created, err := s.invoiceRepo.Create(ctx, invoiceToCreate)
	if err != nil {
		// Two concurrent first-time saves can race past the lookup; the
		// storage-level uniqueness constraint catches the loser.
		log.Printf("Save: Error creating invoice %s: %v", req.InvoiceNumber, err)
		return nil, false, mapRepoError(err, "creating invoice")
	}
	s.listCache.Invalidate(ctx)
	return created, true, nil
}

// Update is the strict update-only path behind PUT. It requires
// pre-existence and, matching the original API, does not re-run the
// required-field validator; totals are still recomputed server-side.
func (s *invoiceService) Update(ctx context.Context, number string, req *dto.UpdateInvoiceRequest) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapRepoError(err, "getting invoice for update")
	}

	details := PriceLineItems(req.Details.Items())
	invoice.CustomerName = req.CustomerName
	invoice.Date = req.Date
	invoice.Details = details
	invoice.TotalAmount = InvoiceTotal(details)

	updated, err := s.invoiceRepo.Replace(ctx, invoice)
	if err != nil {
		return nil, mapRepoError(err, "updating invoice")
	}
	s.listCache.Invalidate(ctx)
	return updated, nil
}

func (s *invoiceService) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapRepoError(err, "getting invoice")
	}
	return invoice, nil
}

func (s *invoiceService) Delete(ctx context.Context, number string) error {
	deleted, err := s.invoiceRepo.DeleteByNumber(ctx, number)
	if err != nil {
		return mapRepoError(err, "deleting invoice")
	}
	if !deleted {
		return ErrNotFound
	}
	s.listCache.Invalidate(ctx)
	return nil
}

// List returns one page of invoices, newest date first. Page defaults to 1
// and pageSize to 10 when unspecified or non-positive. Pages are served from
// the Redis cache when possible; every write path invalidates it.
func (s *invoiceService) List(ctx context.Context, req *dto.ListInvoicesRequest) (*InvoiceList, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.Limit
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var invoices []models.Invoice
	var total int

	if cached := s.listCache.Get(ctx, page, pageSize); cached != nil {
		invoices, total = cached.Invoices, cached.Total
	} else {
		var err error
		invoices, total, err = s.invoiceRepo.List(ctx, page, pageSize)
		if err != nil {
			return nil, mapRepoError(err, "listing invoices")
		}
		s.listCache.Set(ctx, page, pageSize, &cache.InvoiceListPage{Invoices: invoices, Total: total})
	}

	totalPages := (total + pageSize - 1) / pageSize

	return &InvoiceList{
		Invoices:      invoices,
		TotalInvoices: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
	}, nil
}
