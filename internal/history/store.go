// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of completed conversions in SQLite.
// Recording is best-effort: callers treat store failures as warnings, never
// as conversion failures. See docs/ARCHITECTURE § History.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/svgconv/pkg/types"
)

const dbFile = "history.db"

// Entry is one recorded conversion.
type Entry struct {
	ID          int64        `json:"id" yaml:"id"`
	Source      string       `json:"source" yaml:"source"`
	Format      types.Format `json:"format" yaml:"format"`
	OutputPath  string       `json:"output_path" yaml:"output_path"`
	InputSize   int          `json:"input_bytes" yaml:"input_bytes"`
	OutputSize  int          `json:"output_bytes" yaml:"output_bytes"`
	ConvertedAt time.Time    `json:"converted_at" yaml:"converted_at"`
}

// Store manages the conversion history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at historyDir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.HistoryDir == "" {
		return nil, fmt.Errorf("history directory not configured")
	}
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			format TEXT NOT NULL,
			output_path TEXT NOT NULL,
			input_bytes INTEGER NOT NULL,
			output_bytes INTEGER NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_format ON conversions(format)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one conversion. A zero ConvertedAt is stamped with the
// current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	ts := e.ConvertedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source, format, output_path, input_bytes, output_bytes, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Source, string(e.Format), e.OutputPath, e.InputSize, e.OutputSize,
		ts.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// QueryOptions holds parameters for history queries.
type QueryOptions struct {
	// Format filters by output format. Empty matches all formats.
	Format types.Format

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Recent returns the newest conversions first, optionally filtered by
// format and capped at opts.MaxResults.
func (s *Store) Recent(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT id, source, format, output_path, input_bytes, output_bytes, converted_at
		 FROM conversions WHERE 1=1`)
	if opts.Format != "" {
		qb.WriteString(` AND format = ?`)
		args = append(args, string(opts.Format))
	}
	qb.WriteString(` ORDER BY id DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			f  string
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Source, &f, &e.OutputPath, &e.InputSize, &e.OutputSize, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Format = types.Format(f)
		if t, perr := time.Parse(time.RFC3339Nano, ts); perr == nil {
			e.ConvertedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
