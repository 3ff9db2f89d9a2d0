// Package store persists puzzles and solve runs in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pflow-xyz/go-sudoku/board"
	"github.com/pflow-xyz/go-sudoku/search"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		dimension   INTEGER NOT NULL,
		free_cells  INTEGER NOT NULL,
		fingerprint TEXT,
		cells       TEXT NOT NULL,
		created_at  INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS solves (
		id          TEXT PRIMARY KEY,
		puzzle_id   TEXT NOT NULL REFERENCES puzzles(id),
		workers     INTEGER NOT NULL,
		max_depth   INTEGER NOT NULL,
		solved      INTEGER NOT NULL,
		duration_ms REAL NOT NULL,
		cells       INTEGER NOT NULL,
		branches    INTEGER NOT NULL,
		tasks       INTEGER NOT NULL,
		solution    TEXT,
		created_at  INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_solves_puzzle ON solves(puzzle_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string
	Name      string
	Dimension int
	FreeCells int
	CreatedAt time.Time
}

// SavePuzzle stores a puzzle board and returns its generated ID.
func (s *Store) SavePuzzle(b *board.Board, name string) (string, error) {
	cells, err := json.Marshal(b.Cells())
	if err != nil {
		return "", fmt.Errorf("marshal cells: %w", err)
	}

	fingerprint := ""
	if occ, ok := b.Occupancy(); ok {
		fingerprint = occ.Hex()
	}

	id := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO puzzles (id, name, dimension, free_cells, fingerprint, cells, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, b.Dim(), b.FreeCells(), fingerprint, string(cells), time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("insert puzzle: %w", err)
	}
	return id, nil
}

// GetPuzzle loads a puzzle board by ID.
func (s *Store) GetPuzzle(id string) (*board.Board, string, error) {
	var (
		name      string
		dimension int
		cellsJSON string
	)
	err := s.db.QueryRow(`
		SELECT name, dimension, cells FROM puzzles WHERE id = ?`, id).
		Scan(&name, &dimension, &cellsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("%w: puzzle %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, "", fmt.Errorf("query puzzle: %w", err)
	}

	var cells []int
	if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
		return nil, "", fmt.Errorf("unmarshal cells: %w", err)
	}
	b, err := board.New(dimension, cells)
	if err != nil {
		return nil, "", fmt.Errorf("stored puzzle %s: %w", id, err)
	}
	return b, name, nil
}

// ListPuzzles returns metadata for all stored puzzles, newest first.
func (s *Store) ListPuzzles() ([]PuzzleMeta, error) {
	rows, err := s.db.Query(`
		SELECT id, name, dimension, free_cells, created_at
		FROM puzzles ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query puzzles: %w", err)
	}
	defer rows.Close()

	var out []PuzzleMeta
	for rows.Next() {
		var (
			m  PuzzleMeta
			ts int64
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Dimension, &m.FreeCells, &ts); err != nil {
			return nil, fmt.Errorf("scan puzzle: %w", err)
		}
		m.CreatedAt = time.Unix(ts, 0)
		out = append(out, m)
	}
	return out, rows.Err()
}

// SolveRecord captures the configuration and outcome of one run.
type SolveRecord struct {
	Workers  int
	MaxDepth int
	Solved   bool
	Stats    search.Stats
	Solution *board.Board // nil when unsolved
}

// SolveRow is a stored solve run.
type SolveRow struct {
	ID        string
	PuzzleID  string
	Record    SolveRecord
	CreatedAt time.Time
}

// RecordSolve stores the outcome of a run against a stored puzzle and
// returns the solve ID.
func (s *Store) RecordSolve(puzzleID string, rec SolveRecord) (string, error) {
	var solution any
	if rec.Solution != nil {
		data, err := json.Marshal(rec.Solution.Cells())
		if err != nil {
			return "", fmt.Errorf("marshal solution: %w", err)
		}
		solution = string(data)
	}

	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO solves (id, puzzle_id, workers, max_depth, solved, duration_ms,
			cells, branches, tasks, solution, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, puzzleID, rec.Workers, rec.MaxDepth, rec.Solved,
		float64(rec.Stats.Duration)/float64(time.Millisecond),
		rec.Stats.Cells, rec.Stats.Branches, rec.Stats.Tasks,
		solution, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("insert solve: %w", err)
	}
	return id, nil
}

// ListSolves returns the solve runs recorded for a puzzle, newest
// first.
func (s *Store) ListSolves(puzzleID string) ([]SolveRow, error) {
	rows, err := s.db.Query(`
		SELECT id, puzzle_id, workers, max_depth, solved, duration_ms,
			cells, branches, tasks, solution, created_at
		FROM solves WHERE puzzle_id = ?
		ORDER BY created_at DESC, id`, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	var out []SolveRow
	for rows.Next() {
		var (
			row        SolveRow
			durationMS float64
			solution   sql.NullString
			ts         int64
		)
		if err := rows.Scan(&row.ID, &row.PuzzleID, &row.Record.Workers,
			&row.Record.MaxDepth, &row.Record.Solved, &durationMS,
			&row.Record.Stats.Cells, &row.Record.Stats.Branches,
			&row.Record.Stats.Tasks, &solution, &ts); err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		row.Record.Stats.Duration = time.Duration(durationMS * float64(time.Millisecond))
		row.CreatedAt = time.Unix(ts, 0)

		if solution.Valid {
			var cells []int
			if err := json.Unmarshal([]byte(solution.String), &cells); err != nil {
				return nil, fmt.Errorf("unmarshal solution: %w", err)
			}
			b, err := board.FromList(cells)
			if err != nil {
				return nil, fmt.Errorf("stored solution %s: %w", row.ID, err)
			}
			row.Record.Solution = b
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
