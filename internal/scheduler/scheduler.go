// Package scheduler runs background maintenance: the trending-topics cache
// refresh and history retention cleanup.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/bitai/castforge/internal/db"
	"github.com/bitai/castforge/internal/llm"
	"github.com/bitai/castforge/internal/scraper"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	scheduler gocron.Scheduler
	db        *db.DB
	scraper   *scraper.Service
	llm       *llm.Client
	timezone  *time.Location
	retention time.Duration
}

// Config holds scheduler configuration
type Config struct {
	Timezone      string
	RetentionDays int
}

// New creates a new scheduler
func New(database *db.DB, scr *scraper.Service, llmClient *llm.Client, cfg Config) (*Scheduler, error) {
	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		tz = time.UTC
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(tz))
	if err != nil {
		return nil, err
	}

	retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour

	return &Scheduler{
		scheduler: s,
		db:        database,
		scraper:   scr,
		llm:       llmClient,
		timezone:  tz,
		retention: retention,
	}, nil
}

// Start starts the scheduler and registers all jobs
func (s *Scheduler) Start() error {
	// Refresh trending topics every 6 hours
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(6*time.Hour),
		gocron.NewTask(s.refreshTrending),
		gocron.WithName("refresh-trending"),
	)
	if err != nil {
		return err
	}

	// Purge expired history daily at 04:00
	_, err = s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(4, 0, 0))),
		gocron.NewTask(s.purgeHistory),
		gocron.WithName("purge-history"),
	)
	if err != nil {
		return err
	}

	// Health check the completion provider every 5 minutes
	_, err = s.scheduler.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(s.healthCheck),
		gocron.WithName("health-check"),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Println("Scheduler started")
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) refreshTrending() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.scraper.RefreshTrending(ctx); err != nil {
		log.Printf("Trending refresh failed: %v", err)
		return
	}
	log.Println("Refreshed trending topics")
}

func (s *Scheduler) purgeHistory() {
	if s.retention <= 0 {
		return
	}

	cutoff := time.Now().In(s.timezone).Add(-s.retention)
	deleted, err := s.db.PurgeOlderThan(cutoff)
	if err != nil {
		log.Printf("History purge failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Purged %d expired history rows", deleted)
	}
}

func (s *Scheduler) healthCheck() {
	if s.llm == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.llm.HealthCheck(ctx); err != nil {
		log.Printf("Health check failed - provider unreachable: %v", err)
	}
}

// PurgeNow runs history cleanup immediately
func (s *Scheduler) PurgeNow() {
	s.purgeHistory()
}
