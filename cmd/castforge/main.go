package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitai/castforge/internal/api"
	"github.com/bitai/castforge/internal/config"
	"github.com/bitai/castforge/internal/db"
	"github.com/bitai/castforge/internal/generator"
	"github.com/bitai/castforge/internal/llm"
	"github.com/bitai/castforge/internal/publisher"
	"github.com/bitai/castforge/internal/scheduler"
	"github.com/bitai/castforge/internal/scraper"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting castforge...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Create completion client
	llmClient := llm.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel)

	// Validate provider connection at startup
	log.Println("Validating provider connection...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := llmClient.HealthCheck(ctx); err != nil {
		log.Printf("WARNING: provider health check failed: %v", err)
		log.Println("Server will start but generation may not work")
	} else {
		log.Printf("Provider connected (model: %s)", llmClient.Model())
	}
	cancel()

	// Create scraper service
	scr := scraper.NewService(cfg.ApifyToken)
	if !scr.Configured() {
		log.Println("Apify token not set: scraping runs in degraded mode")
	}

	// Create publisher if configured
	var pub api.Publisher
	if cfg.NeynarAPIKey != "" {
		pub = publisher.NewClient("", cfg.NeynarAPIKey)
	} else {
		log.Println("Neynar API key not set: publishing disabled")
	}

	gen := generator.New(llmClient)

	// Create router
	router := api.NewRouter(cfg, database, gen, scr, llmClient, pub)

	// Create and start scheduler
	sched, err := scheduler.New(database, scr, llmClient, scheduler.Config{
		Timezone:      cfg.Timezone,
		RetentionDays: cfg.RetentionDays,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server
	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down gracefully...")

	// Give ongoing requests 10 seconds to complete
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Stopping scheduler...")
	if err := sched.Stop(); err != nil {
		log.Printf("Scheduler shutdown error: %v", err)
	}

	log.Println("Closing database...")
	if err := database.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("Shutdown complete")
}
