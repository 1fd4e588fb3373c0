package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
-- Generated content history per user
CREATE TABLE IF NOT EXISTS content_history (
    id TEXT PRIMARY KEY,
    user_address TEXT NOT NULL,
    topic TEXT NOT NULL,
    selected_hook TEXT NOT NULL,
    generated_content TEXT NOT NULL,
    hashtags TEXT NOT NULL,
    character_count INTEGER NOT NULL,
    cast_hash TEXT,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_content_history_user
    ON content_history(user_address, created_at);
`

// Content status values
const (
	StatusGenerated = "generated"
	StatusPosted    = "posted"
	StatusFailed    = "failed"
)

// DB wraps the SQLite connection
type DB struct {
	conn *sql.DB
}

// ContentRecord is one row of generation history.
type ContentRecord struct {
	ID             string    `json:"id"`
	UserAddress    string    `json:"user_address"`
	Topic          string    `json:"topic"`
	SelectedHook   string    `json:"selected_hook"`
	Content        string    `json:"generated_content"`
	Hashtags       []string  `json:"hashtags"`
	CharacterCount int       `json:"character_count"`
	CastHash       string    `json:"cast_hash,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Open opens (creating if needed) the database at path
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(schema)
	return err
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping verifies the connection is alive
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// SaveContent inserts a history row and returns its ID. A missing ID is
// assigned; a missing status defaults to generated.
func (db *DB) SaveContent(rec ContentRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Status == "" {
		rec.Status = StatusGenerated
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	hashtags, err := json.Marshal(rec.Hashtags)
	if err != nil {
		return "", fmt.Errorf("marshaling hashtags: %w", err)
	}

	var castHash sql.NullString
	if rec.CastHash != "" {
		castHash = sql.NullString{String: rec.CastHash, Valid: true}
	}

	_, err = db.conn.Exec(
		`INSERT INTO content_history (id, user_address, topic, selected_hook, generated_content, hashtags, character_count, cast_hash, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserAddress, rec.Topic, rec.SelectedHook, rec.Content,
		string(hashtags), rec.CharacterCount, castHash, rec.Status,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting content: %w", err)
	}

	return rec.ID, nil
}

// GetHistory returns a user's history, most recent first, plus the total
// row count for paging.
func (db *DB) GetHistory(userAddress string, limit, offset int) ([]ContentRecord, int, error) {
	var total int
	err := db.conn.QueryRow(
		`SELECT COUNT(*) FROM content_history WHERE user_address = ?`, userAddress,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting history: %w", err)
	}

	rows, err := db.conn.Query(
		`SELECT id, user_address, topic, selected_hook, generated_content, hashtags, character_count, cast_hash, status, created_at
		 FROM content_history
		 WHERE user_address = ?
		 ORDER BY created_at DESC
		 LIMIT ? OFFSET ?`,
		userAddress, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []ContentRecord
	for rows.Next() {
		rec, err := scanContent(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

// GetContent fetches one history row by ID. Returns nil if not found.
func (db *DB) GetContent(id string) (*ContentRecord, error) {
	row := db.conn.QueryRow(
		`SELECT id, user_address, topic, selected_hook, generated_content, hashtags, character_count, cast_hash, status, created_at
		 FROM content_history WHERE id = ?`, id,
	)

	rec, err := scanContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateContent sets the status and/or cast hash of a history row. Empty
// arguments leave the existing value. Returns false if the row does not
// exist.
func (db *DB) UpdateContent(id, status, castHash string) (bool, error) {
	result, err := db.conn.Exec(
		`UPDATE content_history
		 SET status = COALESCE(NULLIF(?, ''), status),
		     cast_hash = COALESCE(NULLIF(?, ''), cast_hash)
		 WHERE id = ?`,
		status, castHash, id,
	)
	if err != nil {
		return false, fmt.Errorf("updating content: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// PurgeOlderThan removes history rows created before the cutoff.
func (db *DB) PurgeOlderThan(cutoff time.Time) (int64, error) {
	result, err := db.conn.Exec(
		`DELETE FROM content_history WHERE created_at < ?`,
		cutoff.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("purging history: %w", err)
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (ContentRecord, error) {
	var rec ContentRecord
	var hashtags string
	var castHash sql.NullString
	var createdAt string

	err := row.Scan(&rec.ID, &rec.UserAddress, &rec.Topic, &rec.SelectedHook,
		&rec.Content, &hashtags, &rec.CharacterCount, &castHash, &rec.Status, &createdAt)
	if err != nil {
		return rec, err
	}

	if err := json.Unmarshal([]byte(hashtags), &rec.Hashtags); err != nil {
		rec.Hashtags = nil
	}
	if castHash.Valid {
		rec.CastHash = castHash.String
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = ts
	}

	return rec, nil
}
