package dataset

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store persists the integrated dataset in a local SQLite database. It is
// the dataset provider the query engine loads from: `agriquery sync` writes
// it once, `ask`/`chat` read it back.
type Store struct {
	db *sql.DB
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS records (
	state TEXT NOT NULL,
	district TEXT NOT NULL DEFAULT '',
	year INTEGER,
	season TEXT NOT NULL DEFAULT '',
	crop TEXT NOT NULL DEFAULT '',
	production_tonnes REAL NOT NULL DEFAULT 0,
	rainfall_mm REAL NOT NULL DEFAULT 0
)`

// OpenStore opens (creating if needed) the SQLite database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset store: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize dataset store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored dataset with the given table.
func (s *Store) Save(t *Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear dataset store: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO records
		(state, district, year, season, crop, production_tonnes, rainfall_mm)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		var year any
		if r.HasYear() {
			year = r.Year
		}
		if _, err := stmt.Exec(r.State, r.District, year, r.Season, r.Crop, r.ProductionTonnes, r.RainfallMM); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// Load reads the full stored dataset into memory.
func (s *Store) Load() (*Table, error) {
	rows, err := s.db.Query(`SELECT state, district, year, season, crop, production_tonnes, rainfall_mm
		FROM records ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset store: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var year sql.NullInt64
		if err := rows.Scan(&r.State, &r.District, &year, &r.Season, &r.Crop, &r.ProductionTonnes, &r.RainfallMM); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if year.Valid {
			r.Year = int(year.Int64)
		} else {
			r.Year = MissingYear
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset store: %w", err)
	}
	return NewTable(records), nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}
