// Package storage provides SQLite-based persistence for scene scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.blur/blur.db"

const sqliteTime = "2006-01-02 15:04:05"

// DefaultTickRate is assumed for runs stored without a tick rate.
const DefaultTickRate = 60

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Run is a finished session of a scene.
type Run struct {
	RunID    uuid.UUID
	SceneID  string
	Score    int
	Ticks    int   // Simulation ticks the run lasted
	TickRate int   // Ticks per second the run was simulated at
	Seed     int64 // RNG seed, enough to replay the run with the same inputs
}

// ScoreEntry represents a single stored run.
type ScoreEntry struct {
	ID        int64
	RunID     uuid.UUID
	SceneID   string
	Score     int
	Ticks     int
	TickRate  int
	Seed      int64
	CreatedAt time.Time
}

// Duration is the simulated length of the run.
func (e ScoreEntry) Duration() time.Duration {
	rate := e.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Duration(e.Ticks) * time.Second / time.Duration(rate)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			scene_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			tick_rate INTEGER NOT NULL DEFAULT 60,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_scene_id ON scores(scene_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(scene_id, score DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Databases created before runs kept their tick rate.
	var hasTickRate int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info('scores') WHERE name = 'tick_rate'",
	).Scan(&hasTickRate)
	if err != nil {
		return err
	}
	if hasTickRate == 0 {
		_, err = s.db.Exec("ALTER TABLE scores ADD COLUMN tick_rate INTEGER NOT NULL DEFAULT 60")
	}
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A zero RunID is replaced with a fresh one.
// Returns the stored run ID.
func (s *Store) SaveRun(run Run) (uuid.UUID, error) {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}
	if run.TickRate <= 0 {
		run.TickRate = DefaultTickRate
	}

	_, err := s.db.Exec(
		"INSERT INTO scores (run_id, scene_id, score, ticks, tick_rate, seed) VALUES (?, ?, ?, ?, ?, ?)",
		run.RunID.String(), run.SceneID, run.Score, run.Ticks, run.TickRate, run.Seed,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.RunID, nil
}

// SaveScore records a new score for the given scene under a fresh run ID.
// Returns the row ID of the inserted record.
func (s *Store) SaveScore(sceneID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (run_id, scene_id, score) VALUES (?, ?, ?)",
		uuid.NewString(), sceneID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectColumns = `SELECT id, run_id, scene_id, score, ticks, tick_rate, seed, created_at FROM scores`

// TopScores retrieves the top N scores for the given scene.
// Results are ordered by score descending.
func (s *Store) TopScores(sceneID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(selectColumns+`
		 WHERE scene_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		sceneID, limit,
	)
}

// AllScores retrieves all scores for the given scene (no limit).
func (s *Store) AllScores(sceneID string) ([]ScoreEntry, error) {
	return s.query(selectColumns+`
		 WHERE scene_id = ?
		 ORDER BY score DESC, id ASC`,
		sceneID,
	)
}

// RecentRuns retrieves the most recent runs across all scenes.
func (s *Store) RecentRuns(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.query(selectColumns+`
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// RunByID looks up a single run. Returns nil when it does not exist.
func (s *Store) RunByID(runID uuid.UUID) (*ScoreEntry, error) {
	entries, err := s.query(selectColumns+` WHERE run_id = ?`, runID.String())
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (s *Store) query(q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var runID string
		var createdAt any
		if err := rows.Scan(&e.ID, &runID, &e.SceneID, &e.Score, &e.Ticks, &e.TickRate, &e.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.RunID, err = uuid.Parse(runID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", runID, err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse(sqliteTime, v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given scene.
// Returns 0 if no scores exist.
func (s *Store) HighScore(sceneID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE scene_id = ?",
		sceneID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// SceneStats summarises the runs stored for one scene.
type SceneStats struct {
	Runs  int
	Best  int
	Ticks int // Total simulated ticks across all runs
}

// Stats returns the run count, best score and total ticks for a scene.
func (s *Store) Stats(sceneID string) (SceneStats, error) {
	var st SceneStats
	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(ticks), 0) FROM scores WHERE scene_id = ?",
		sceneID,
	).Scan(&st.Runs, &st.Best, &st.Ticks)
	if err != nil {
		return SceneStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearScores deletes all scores for the given scene.
func (s *Store) ClearScores(sceneID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE scene_id = ?", sceneID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
