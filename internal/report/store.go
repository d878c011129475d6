// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/market-scout/pkg/types"
)

const dbFile = "reports.db"

// ErrNoReport is returned when no report has been persisted yet.
var ErrNoReport = errors.New("no report stored")

// Record is one persisted report row.
type Record struct {
	ID        string
	Query     string
	CreatedAt time.Time

	// Body is the pretty-printed UTF-8 JSON serialization of the Report.
	Body []byte
}

// Report decodes the record body.
func (r Record) Report() (types.Report, error) {
	var rep types.Report
	if err := json.Unmarshal(r.Body, &rep); err != nil {
		return types.Report{}, fmt.Errorf("parsing stored report %s: %w", r.ID, err)
	}
	return rep, nil
}

// Store persists completed reports in a SQLite database, addressable by
// run identifier. Each run gets its own row; concurrent runs never race on
// a shared slot.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the report database at dataDir/reports.db and
// creates the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS reports (
			id         TEXT PRIMARY KEY,
			query      TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			body       TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
	`)
	return err
}

// Save persists a report and returns its new run identifier.
func (s *Store) Save(rep types.Report, query string) (string, error) {
	body, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO reports (id, query, created_at, body) VALUES (?, ?, ?, ?)`,
		id, query, time.Now().UTC(), string(body))
	if err != nil {
		return "", fmt.Errorf("inserting report: %w", err)
	}
	return id, nil
}

// Get returns the record with the given identifier, or ErrNoReport.
func (s *Store) Get(id string) (Record, error) {
	row := s.db.QueryRow(`SELECT id, query, created_at, body FROM reports WHERE id = ?`, id)
	return scanRecord(row)
}

// Latest returns the most recently persisted record, or ErrNoReport when
// the store is empty.
func (s *Store) Latest() (Record, error) {
	row := s.db.QueryRow(`SELECT id, query, created_at, body FROM reports ORDER BY created_at DESC, id LIMIT 1`)
	return scanRecord(row)
}

// List returns up to limit records, newest first, bodies included.
func (s *Store) List(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, query, created_at, body FROM reports ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var body string
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.CreatedAt, &body); err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		rec.Body = []byte(body)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRecord(row *sql.Row) (Record, error) {
	var rec Record
	var body string
	err := row.Scan(&rec.ID, &rec.Query, &rec.CreatedAt, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNoReport
	}
	if err != nil {
		return Record{}, fmt.Errorf("scanning report row: %w", err)
	}
	rec.Body = []byte(body)
	return rec, nil
}

// Export writes the record body to path as the single-slot JSON artifact,
// overwriting any previous run's export. Last writer wins.
func Export(rec Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	if err := os.WriteFile(path, rec.Body, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
