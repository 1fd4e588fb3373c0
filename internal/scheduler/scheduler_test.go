package scheduler

import (
	"os"
	"testing"
	"time"

	"github.com/bitai/castforge/internal/db"
	"github.com/bitai/castforge/internal/scraper"
)

func setupTestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "castforge-sched-*")
	if err != nil {
		t.Fatalf("creating temp dir: %v", err)
	}

	database, err := db.Open(tmpDir + "/test.db")
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("opening database: %v", err)
	}

	return database, func() {
		database.Close()
		os.RemoveAll(tmpDir)
	}
}

func TestNewFallsBackToUTC(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	s, err := New(database, scraper.NewService(""), nil, Config{Timezone: "Not/AZone", RetentionDays: 30})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Stop()

	if s.timezone != time.UTC {
		t.Errorf("expected UTC fallback, got %v", s.timezone)
	}
}

func TestPurgeHistory(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	old := db.ContentRecord{
		UserAddress:  "0xabc",
		Topic:        "ai",
		SelectedHook: "hook",
		Content:      "old post",
		CreatedAt:    time.Now().Add(-100 * 24 * time.Hour),
	}
	recent := db.ContentRecord{
		UserAddress:  "0xabc",
		Topic:        "ai",
		SelectedHook: "hook",
		Content:      "recent post",
	}
	if _, err := database.SaveContent(old); err != nil {
		t.Fatalf("saving old: %v", err)
	}
	if _, err := database.SaveContent(recent); err != nil {
		t.Fatalf("saving recent: %v", err)
	}

	s, err := New(database, scraper.NewService(""), nil, Config{Timezone: "UTC", RetentionDays: 90})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Stop()

	s.PurgeNow()

	_, total, err := database.GetHistory("0xabc", 10, 0)
	if err != nil {
		t.Fatalf("reading history: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 row after purge, got %d", total)
	}
}

func TestPurgeDisabledRetention(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	old := db.ContentRecord{
		UserAddress:  "0xabc",
		Topic:        "ai",
		SelectedHook: "hook",
		Content:      "old post",
		CreatedAt:    time.Now().Add(-100 * 24 * time.Hour),
	}
	if _, err := database.SaveContent(old); err != nil {
		t.Fatalf("saving old: %v", err)
	}

	s, err := New(database, scraper.NewService(""), nil, Config{Timezone: "UTC", RetentionDays: 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Stop()

	s.PurgeNow()

	_, total, err := database.GetHistory("0xabc", 10, 0)
	if err != nil {
		t.Fatalf("reading history: %v", err)
	}
	if total != 1 {
		t.Errorf("expected purge to be skipped, got %d rows", total)
	}
}
