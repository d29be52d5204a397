// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-api/config"
	"invoice-api/internal/app"
	"invoice-api/internal/database"
	"invoice-api/internal/server"
	"invoice-api/internal/storage/postgres"

	_ "invoice-api/docs" // Generated swagger docs

	"github.com/go-playground/validator"
	"github.com/redis/go-redis/v9"
)

// @title           Invoice API
// @version         1.0
// @description     REST API for invoice CRUD: create-or-update by invoice number, paginated listing, and line-item total computation.

// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:4040
// @BasePath  /api
// @schemes   http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(migrateCtx, dbPool); err != nil {
		log.Fatalf("Failed to prepare database schema: %v", err)
	}

	// --- Initialize Redis Client (optional list cache) ---
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("WARN: Failed to connect to Redis: %v. Continuing without list cache.", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	} else {
		log.Println("Redis address not configured, skipping list cache initialization.")
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")
	log.Println("Application gracefully stopped.")
}
