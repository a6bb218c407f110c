// Package store persists coverselect.Result records to a SQLite database,
// mirroring the Python original's _init_db/save_result/api_get_result/
// api_delete_result table shape: one results table with an autoincrement
// id, a params JSON blob (the result record minus
// combos/execution_time/workers/id), a separate combos JSON blob, and a
// created timestamp.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/samplecover/coverkit/coverselect"
)

// ErrNotFound indicates no result exists for the requested id, the Go
// analogue of the Python API's 404 "记录不存在" responses.
var ErrNotFound = errors.New("store: result not found")

const schema = `CREATE TABLE IF NOT EXISTS results(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	params TEXT NOT NULL,
	combos TEXT NOT NULL,
	created TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`

// Store wraps a *sql.DB opened against the results database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite database at path and ensures
// the results table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// params is the JSON shape persisted in the params column: m, n, k, j, s,
// t, samples and fully_covered. Combos are stored in their own column;
// execution_time, workers and Warnings are not stored.
type params struct {
	M            int   `json:"m"`
	N            int   `json:"n"`
	K            int   `json:"k"`
	J            int   `json:"j"`
	S            int   `json:"s"`
	T            int   `json:"t"`
	Samples      []int `json:"samples"`
	FullyCovered bool  `json:"fully_covered,omitempty"`
}

// Save inserts res and returns its assigned id.
func (s *Store) Save(res coverselect.Result) (int64, error) {
	p := params{
		M: res.M, N: res.N, K: res.K, J: res.J, S: res.S, T: res.T,
		Samples:      res.Samples,
		FullyCovered: res.FullyCovered,
	}
	paramsJSON, err := json.Marshal(p)
	if err != nil {
		return 0, err
	}
	combosJSON, err := json.Marshal(res.Combos)
	if err != nil {
		return 0, err
	}

	result, err := s.db.Exec(
		"INSERT INTO results(params, combos) VALUES (?, ?)",
		string(paramsJSON), string(combosJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert: %w", err)
	}

	return result.LastInsertId()
}

// Record is a persisted result as returned by Get: the params fields plus
// combos and the assigned id, mirroring api_get_result's {**params,
// "combos": combos, "id": rid} response shape.
type Record struct {
	ID int64 `json:"id"`
	params
	Combos [][]int `json:"combos"`
}

// Get fetches the record stored under id, or ErrNotFound.
func (s *Store) Get(id int64) (Record, error) {
	row := s.db.QueryRow("SELECT params, combos FROM results WHERE id = ?", id)

	var paramsJSON, combosJSON string
	if err := row.Scan(&paramsJSON, &combosJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}

		return Record{}, fmt.Errorf("store: get %d: %w", id, err)
	}

	var rec Record
	rec.ID = id
	if err := json.Unmarshal([]byte(paramsJSON), &rec.params); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(combosJSON), &rec.Combos); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// Delete removes the record stored under id, or ErrNotFound if it did not
// exist.
func (s *Store) Delete(id int64) error {
	result, err := s.db.Exec("DELETE FROM results WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("store: delete %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
