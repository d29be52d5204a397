package integration_tests

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"invoice-api/internal/cache"
	"invoice-api/internal/models"
	"invoice-api/internal/storage/postgres"
	"invoice-api/internal/transport/dto"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool
var testRedisClient *redis.Client

// getTestClients establishes a connection pool to the test database.
// It reads the DSN from the TEST_DATABASE_URL environment variable and
// skips the test when it is not set.
func getTestClients(t *testing.T) (*pgxpool.Pool, *redis.Client) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	if testPool == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, dsn)
		require.NoError(t, err, "Failed to connect to test database")
		require.NoError(t, pool.Ping(ctx), "Failed to ping test database")

		require.NoError(t, postgres.EnsureSchema(ctx, pool), "Failed to create schema")
		testPool = pool
	}

	// --- Redis Setup ---
	if testRedisClient == nil {
		redisAddr := os.Getenv("TEST_REDIS_URL")
		if redisAddr == "" {
			log.Println("WARN: TEST_REDIS_URL not set. Cache-dependent tests run with caching disabled.")
			// Keep testRedisClient as nil
		} else {
			rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
			ctxRedis, cancelRedis := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancelRedis()
			if err := rdb.Ping(ctxRedis).Err(); err != nil {
				log.Printf("WARN: Failed to connect to test Redis at %s: %v. Cache-dependent tests run with caching disabled.", redisAddr, err)
				// Keep testRedisClient as nil
			} else {
				testRedisClient = rdb
			}
		}
	}
	return testPool, testRedisClient
}

// cleanupInvoices truncates the invoices table for test isolation.
func cleanupInvoices(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE invoices")
	require.NoError(t, err, "Failed to truncate invoices table")
}

// cleanupRedis flushes the test Redis database. Use with caution!
func cleanupRedis(t *testing.T, client *redis.Client) {
	t.Helper()
	if client == nil {
		return // No client to clean
	}
	err := client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "Failed to flush test Redis database")
}

// newTestListCache builds a list cache over the test Redis client.
// With no Redis configured the cache is a no-op and reads go to the database.
func newTestListCache(client *redis.Client) *cache.InvoiceListCache {
	return cache.NewInvoiceListCache(client)
}

// saveRequest builds a valid SaveInvoiceRequest with a single line item.
func saveRequest(number, customer, date string, quantity, unitPrice float64) *dto.SaveInvoiceRequest {
	return &dto.SaveInvoiceRequest{
		InvoiceNumber: number,
		CustomerName:  customer,
		Date:          mustDate(date),
		Details: models.NewLineItemList([]models.LineItem{
			{
				Description: "Consulting",
				Quantity:    models.DecimalFromFloat(quantity),
				UnitPrice:   models.DecimalFromFloat(unitPrice),
			},
		}),
	}
}

func mustDate(s string) models.Date {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return models.NewDate(parsed)
}
