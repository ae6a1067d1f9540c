// Package cache memoizes parse results keyed by document content hash.
// Parsing is a pure function of the document bytes, so a schedule uploaded
// twice is parsed once; the HTTP service serves repeat requests from here.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/avolio/flightgrid/model"
	"github.com/avolio/flightgrid/pkg/logger"
	"github.com/avolio/flightgrid/schedule"
)

// ErrNotFound is returned by Get for an unknown schedule id.
var ErrNotFound = errors.New("schedule not found in cache")

// Entry is one cached parse: the document identity, the target period it was
// parsed against, and the parse output.
type Entry struct {
	ID          string               `json:"id"`
	Filename    string               `json:"filename"`
	Year        int                  `json:"year"`
	Month       time.Month           `json:"month"`
	Records     []model.FlightRecord `json:"records"`
	Diagnostics schedule.Diagnostics `json:"diagnostics"`
	CreatedAt   time.Time            `json:"created_at"`
}

// Key returns the cache id of a document: the hex SHA-256 of its bytes.
func Key(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Store is a SQLite-backed parse cache.
type Store struct {
	db     *sql.DB
	logger *logger.Logger
}

// Open opens or creates the cache database at path. The path ":memory:"
// opens an in-memory database.
func Open(path string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite serializes writers; one pooled connection also keeps an
	// in-memory database from vanishing between calls.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	s := &Store{
		db:     db,
		logger: log.Named("cache"),
	}
	if err := s.initDB(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// initDB initializes the database tables
func (s *Store) initDB() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schedules (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			records TEXT NOT NULL,
			diagnostics TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schedules table: %w", err)
	}

	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_schedules_created_at ON schedules(created_at)`)
	if err != nil {
		return fmt.Errorf("failed to create schedules index: %w", err)
	}

	return nil
}

// Put stores an entry, replacing any previous parse of the same document.
func (s *Store) Put(ctx context.Context, entry *Entry) error {
	records, err := json.Marshal(entry.Records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	diagnostics, err := json.Marshal(entry.Diagnostics)
	if err != nil {
		return fmt.Errorf("failed to encode diagnostics: %w", err)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO schedules
		(id, filename, year, month, records, diagnostics, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Filename,
		entry.Year,
		int(entry.Month),
		string(records),
		string(diagnostics),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}

	s.logger.Debug("cached schedule",
		logger.String("id", entry.ID),
		logger.Int("records", len(entry.Records)))
	return nil
}

// Get returns the cached entry for a schedule id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, filename, year, month, records, diagnostics, created_at
		FROM schedules
		WHERE id = ?`,
		id,
	)

	var entry Entry
	var month int
	var records, diagnostics, createdAt string
	if err := row.Scan(&entry.ID, &entry.Filename, &entry.Year, &month,
		&records, &diagnostics, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	entry.Month = time.Month(month)

	if err := json.Unmarshal([]byte(records), &entry.Records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	if err := json.Unmarshal([]byte(diagnostics), &entry.Diagnostics); err != nil {
		return nil, fmt.Errorf("failed to decode diagnostics: %w", err)
	}

	var err error
	entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &entry, nil
}
