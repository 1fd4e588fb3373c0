package db

import (
	"os"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "castforge-db-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	tmpFile.Close()

	db, err := Open(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("opening database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(tmpFile.Name())
	}

	return db, cleanup
}

func TestSaveAndGetContent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := db.SaveContent(ContentRecord{
		UserAddress:    "0xabc",
		Topic:          "AI in Indonesia",
		SelectedHook:   "A hook",
		Content:        "The full post",
		Hashtags:       []string{"ai", "tech"},
		CharacterCount: 13,
	})
	if err != nil {
		t.Fatalf("saving content: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated ID")
	}

	rec, err := db.GetContent(id)
	if err != nil {
		t.Fatalf("getting content: %v", err)
	}
	if rec == nil {
		t.Fatal("content not found")
	}
	if rec.Status != StatusGenerated {
		t.Errorf("status = %q, want generated", rec.Status)
	}
	if len(rec.Hashtags) != 2 || rec.Hashtags[0] != "ai" {
		t.Errorf("hashtags = %v", rec.Hashtags)
	}
	if rec.CastHash != "" {
		t.Errorf("cast hash should be empty, got %q", rec.CastHash)
	}
}

func TestGetContentMissing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	rec, err := db.GetContent("no-such-id")
	if err != nil {
		t.Fatalf("getting content: %v", err)
	}
	if rec != nil {
		t.Error("expected nil for missing row")
	}
}

func TestGetHistoryPaging(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := db.SaveContent(ContentRecord{
			UserAddress:    "0xabc",
			Topic:          "topic",
			SelectedHook:   "hook",
			Content:        "content",
			CharacterCount: 7,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("saving content %d: %v", i, err)
		}
	}
	// Another user's row must not leak into the page.
	if _, err := db.SaveContent(ContentRecord{UserAddress: "0xother", Topic: "t", SelectedHook: "h", Content: "c"}); err != nil {
		t.Fatalf("saving other user content: %v", err)
	}

	records, total, err := db.GetHistory("0xabc", 2, 0)
	if err != nil {
		t.Fatalf("getting history: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(records) != 2 {
		t.Fatalf("page size = %d, want 2", len(records))
	}
	if !records[0].CreatedAt.After(records[1].CreatedAt) {
		t.Error("history must be most recent first")
	}

	records, _, err = db.GetHistory("0xabc", 2, 4)
	if err != nil {
		t.Fatalf("getting last page: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("last page size = %d, want 1", len(records))
	}
}

func TestUpdateContent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := db.SaveContent(ContentRecord{
		UserAddress: "0xabc", Topic: "t", SelectedHook: "h", Content: "c",
	})
	if err != nil {
		t.Fatalf("saving content: %v", err)
	}

	found, err := db.UpdateContent(id, StatusPosted, "0xhash")
	if err != nil {
		t.Fatalf("updating content: %v", err)
	}
	if !found {
		t.Fatal("expected row to be found")
	}

	rec, err := db.GetContent(id)
	if err != nil {
		t.Fatalf("getting content: %v", err)
	}
	if rec.Status != StatusPosted {
		t.Errorf("status = %q, want posted", rec.Status)
	}
	if rec.CastHash != "0xhash" {
		t.Errorf("cast hash = %q", rec.CastHash)
	}

	// Partial update keeps existing values.
	if _, err := db.UpdateContent(id, StatusFailed, ""); err != nil {
		t.Fatalf("partial update: %v", err)
	}
	rec, _ = db.GetContent(id)
	if rec.Status != StatusFailed || rec.CastHash != "0xhash" {
		t.Errorf("partial update got status=%q castHash=%q", rec.Status, rec.CastHash)
	}

	found, err = db.UpdateContent("missing", StatusPosted, "")
	if err != nil {
		t.Fatalf("updating missing: %v", err)
	}
	if found {
		t.Error("expected not-found for missing row")
	}
}

func TestPurgeOlderThan(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	old := ContentRecord{
		UserAddress: "0xabc", Topic: "t", SelectedHook: "h", Content: "c",
		CreatedAt: time.Now().Add(-100 * 24 * time.Hour),
	}
	recent := ContentRecord{
		UserAddress: "0xabc", Topic: "t", SelectedHook: "h", Content: "c",
	}
	if _, err := db.SaveContent(old); err != nil {
		t.Fatalf("saving old: %v", err)
	}
	if _, err := db.SaveContent(recent); err != nil {
		t.Fatalf("saving recent: %v", err)
	}

	purged, err := db.PurgeOlderThan(time.Now().Add(-90 * 24 * time.Hour))
	if err != nil {
		t.Fatalf("purging: %v", err)
	}
	if purged != 1 {
		t.Errorf("purged = %d, want 1", purged)
	}

	_, total, err := db.GetHistory("0xabc", 10, 0)
	if err != nil {
		t.Fatalf("getting history: %v", err)
	}
	if total != 1 {
		t.Errorf("remaining = %d, want 1", total)
	}
}
