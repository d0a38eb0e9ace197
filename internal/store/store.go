// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/averku/chartle/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for imported datasets.
type Store struct {
	db *sql.DB
}

// Dataset describes one imported batch of normalized games.
type Dataset struct {
	ID         int64
	Name       string
	ImportedAt time.Time
	DayCount   int
	FactCount  int
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			imported_at TEXT NOT NULL,
			day_count INTEGER NOT NULL,
			fact_count INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS facts (
			dataset_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			day_index INTEGER NOT NULL,
			day_ts INTEGER NOT NULL,
			day_label TEXT NOT NULL,
			day_key TEXT NOT NULL,
			player TEXT NOT NULL,
			guesses INTEGER,
			solved INTEGER NOT NULL,
			is_crown INTEGER NOT NULL,
			crown_round TEXT NOT NULL,
			source_row INTEGER NOT NULL,
			PRIMARY KEY (dataset_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_datasets_imported_at ON datasets(imported_at);`,
		`CREATE INDEX IF NOT EXISTS idx_facts_player ON facts(player);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveDataset stores a named batch of facts and returns the dataset id.
func (s *Store) SaveDataset(ctx context.Context, name string, facts []model.Fact) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO datasets (name, imported_at, day_count, fact_count) VALUES (?, ?, ?, ?)`,
		name,
		time.Now().UTC().Format(time.RFC3339Nano),
		countDays(facts),
		len(facts),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(facts) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO facts (dataset_id, position, day_index, day_ts, day_label, day_key, player, guesses, solved, is_crown, crown_round, source_row)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, f := range facts {
			var guesses any
			if f.Solved {
				guesses = f.Guesses
			}
			if _, err := stmt.ExecContext(ctx, id, i,
				f.Day.Index, f.Day.Timestamp, f.Day.Label, f.Day.Key,
				f.Player, guesses, f.Solved, f.IsCrown, f.CrownRound, f.SourceRow,
			); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListDatasets returns all datasets, most recently imported first.
func (s *Store) ListDatasets(ctx context.Context) ([]Dataset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, imported_at, day_count, fact_count
		 FROM datasets
		 ORDER BY imported_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []Dataset
	for rows.Next() {
		ds, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LatestDataset returns the most recently imported dataset, if any.
func (s *Store) LatestDataset(ctx context.Context) (Dataset, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, imported_at, day_count, fact_count
		 FROM datasets
		 ORDER BY imported_at DESC, id DESC
		 LIMIT 1`)
	ds, err := scanDataset(row)
	if err == sql.ErrNoRows {
		return Dataset{}, false, nil
	}
	if err != nil {
		return Dataset{}, false, err
	}
	return ds, true, nil
}

// FactsForDataset loads a dataset's facts in their original order.
func (s *Store) FactsForDataset(ctx context.Context, datasetID int64) ([]model.Fact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT day_index, day_ts, day_label, day_key, player, guesses, solved, is_crown, crown_round, source_row
		 FROM facts
		 WHERE dataset_id = ?
		 ORDER BY position ASC`, datasetID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var facts []model.Fact
	for rows.Next() {
		var f model.Fact
		var guesses sql.NullInt64
		if err := rows.Scan(&f.Day.Index, &f.Day.Timestamp, &f.Day.Label, &f.Day.Key,
			&f.Player, &guesses, &f.Solved, &f.IsCrown, &f.CrownRound, &f.SourceRow); err != nil {
			return nil, err
		}
		if guesses.Valid {
			f.Guesses = int(guesses.Int64)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return facts, nil
}

// DeleteDataset removes a dataset and its facts.
func (s *Store) DeleteDataset(ctx context.Context, datasetID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM facts WHERE dataset_id = ?`, datasetID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM datasets WHERE id = ?`, datasetID); err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDataset(row rowScanner) (Dataset, error) {
	var ds Dataset
	var importedAt string
	if err := row.Scan(&ds.ID, &ds.Name, &importedAt, &ds.DayCount, &ds.FactCount); err != nil {
		return Dataset{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, importedAt)
	if err != nil {
		return Dataset{}, err
	}
	ds.ImportedAt = parsed
	return ds, nil
}

func countDays(facts []model.Fact) int {
	seen := map[string]struct{}{}
	for _, f := range facts {
		seen[f.Day.Key] = struct{}{}
	}
	return len(seen)
}
