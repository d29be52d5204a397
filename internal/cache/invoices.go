// internal/cache/invoices.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"invoice-api/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	listGenerationKey = "invoices:list:gen"
	listEntryTTL      = 5 * time.Minute
)

// InvoiceListPage is the cached payload for one page of the invoice list.
type InvoiceListPage struct {
	Invoices []models.Invoice `json:"invoices"`
	Total    int              `json:"total"`
}

// InvoiceListCache caches paginated list results in Redis. Invalidation is
// generation-based: every write bumps a counter that is part of the cache
// key, so stale pages are never served and expire on their own TTL.
// A nil client disables the cache entirely.
type InvoiceListCache struct {
	client *redis.Client
}

// NewInvoiceListCache creates a cache backed by the given client. client may
// be nil, in which case every lookup misses and writes are no-ops.
func NewInvoiceListCache(client *redis.Client) *InvoiceListCache {
	return &InvoiceListCache{client: client}
}

func (c *InvoiceListCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *InvoiceListCache) pageKey(ctx context.Context, page, pageSize int) (string, error) {
	gen, err := c.client.Get(ctx, listGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("invoices:list:%d:page:%d:size:%d", gen, page, pageSize), nil
}

// Get returns the cached page, or nil on a miss. Cache errors are logged and
// treated as misses; the cache never fails a read path.
func (c *InvoiceListCache) Get(ctx context.Context, page, pageSize int) *InvoiceListPage {
	if !c.enabled() {
		return nil
	}
	key, err := c.pageKey(ctx, page, pageSize)
	if err != nil {
		log.Printf("Invoice list cache: error reading generation: %v", err)
		return nil
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Invoice list cache: error reading %s: %v", key, err)
		}
		return nil
	}
	var cached InvoiceListPage
	if err := json.Unmarshal(raw, &cached); err != nil {
		log.Printf("Invoice list cache: error decoding %s: %v", key, err)
		return nil
	}
	return &cached
}

// Set stores one page of results. Failures are logged and ignored.
func (c *InvoiceListCache) Set(ctx context.Context, page, pageSize int, value *InvoiceListPage) {
	if !c.enabled() {
		return
	}
	key, err := c.pageKey(ctx, page, pageSize)
	if err != nil {
		log.Printf("Invoice list cache: error reading generation: %v", err)
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("Invoice list cache: error encoding %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, listEntryTTL).Err(); err != nil {
		log.Printf("Invoice list cache: error writing %s: %v", key, err)
	}
}

// Invalidate bumps the list generation so every cached page is orphaned.
// Called after every successful write.
func (c *InvoiceListCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.client.Incr(ctx, listGenerationKey).Err(); err != nil {
		log.Printf("Invoice list cache: error bumping generation: %v", err)
	}
}
