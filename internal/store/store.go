// Package store caches parsed variant positions in DuckDB.
// Raw notation strings are kept alongside their derived fields so the
// table stays queryable without reparsing.
package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/VariantEffect/hgvs-patterns/internal/hgvs"
)

// Store manages a DuckDB connection for caching variant positions.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS positions (
		input VARCHAR PRIMARY KEY,
		position BIGINT,
		intronic_offset BIGINT,
		utr_side VARCHAR,
		utr_offset BIGINT,
		is_extended BOOLEAN
	)`)
	return err
}

// Record pairs a raw notation string with its parsed position.
type Record struct {
	Input string
	Pos   *hgvs.VariantPosition
}

// WritePositions batch-inserts parsed positions using the Appender API.
// Duplicate inputs are deduplicated before writing; inputs already in the
// table are skipped.
func (s *Store) WritePositions(records []Record) error {
	if len(records) == 0 {
		return nil
	}

	existing, err := s.existingInputs()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(records))
	deduped := make([]Record, 0, len(records))
	for _, r := range records {
		if !seen[r.Input] && !existing[r.Input] {
			seen[r.Input] = true
			deduped = append(deduped, r)
		}
	}
	if len(deduped) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "positions")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		p := r.Pos
		if err := appender.AppendRow(
			r.Input,
			nullableInt(p.Position),
			nullableInt(p.IntronicOffset),
			nullableSide(p.UTRSide),
			nullableInt(p.UTROffset),
			p.IsExtended(),
		); err != nil {
			return fmt.Errorf("append position: %w", err)
		}
	}

	return appender.Flush()
}

// existingInputs returns the set of inputs already stored.
func (s *Store) existingInputs() (map[string]bool, error) {
	rows, err := s.db.Query("SELECT input FROM positions")
	if err != nil {
		return nil, fmt.Errorf("query inputs: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var input string
		if err := rows.Scan(&input); err != nil {
			return nil, fmt.Errorf("scan input: %w", err)
		}
		existing[input] = true
	}
	return existing, rows.Err()
}

// ListPositions returns all stored positions in transcript order.
// Ordering happens in Go because SQL cannot express the intronic
// tie-break at exon boundaries.
func (s *Store) ListPositions() ([]Record, error) {
	rows, err := s.db.Query(`SELECT input, position, intronic_offset, utr_side, utr_offset
		FROM positions`)
	if err != nil {
		return nil, fmt.Errorf("query positions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			input                      string
			position, intronic, offset sql.NullInt64
			side                       sql.NullString
		)
		if err := rows.Scan(&input, &position, &intronic, &side, &offset); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}

		p := &hgvs.VariantPosition{
			Position:       intPtr(position),
			IntronicOffset: intPtr(intronic),
			UTRSide:        sideFor(side),
			UTROffset:      intPtr(offset),
		}
		records = append(records, Record{Input: input, Pos: p})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate positions: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Pos.Less(records[j].Pos)
	})
	return records, nil
}

// CountExtended returns how many stored positions use the extended syntax.
func (s *Store) CountExtended() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT count(*) FROM positions WHERE is_extended").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count extended: %w", err)
	}
	return n, nil
}

// Clear removes all stored positions.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM positions")
	return err
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}

func nullableSide(side hgvs.UTRSide) any {
	if side == hgvs.UTRNone {
		return nil
	}
	return side.String()
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func sideFor(v sql.NullString) hgvs.UTRSide {
	if !v.Valid {
		return hgvs.UTRNone
	}
	switch v.String {
	case "5p":
		return hgvs.FivePrimeUTR
	case "3p":
		return hgvs.ThreePrimeUTR
	default:
		return hgvs.UTRNone
	}
}
