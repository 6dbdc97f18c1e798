package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("turret", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different scene
	if _, err := store.SaveScore("compass", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("turret", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].RunID == uuid.Nil {
			t.Errorf("scores[%d] has no run id", i)
		}
	}

	if scores[0].RunID == scores[1].RunID {
		t.Error("each score should get its own run id")
	}

	compassScores, err := store.TopScores("compass", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(compassScores) != 1 {
		t.Errorf("Expected 1 compass score, got %d", len(compassScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("turret")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty scene, got %d", high)
	}

	store.SaveScore("turret", 100)
	store.SaveScore("turret", 300)
	store.SaveScore("turret", 200)

	high, err = store.HighScore("turret")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("turret", 100)
	store.SaveScore("turret", 200)
	store.SaveScore("compass", 300)

	if err := store.ClearScores("turret"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	turretScores, _ := store.TopScores("turret", 10)
	if len(turretScores) != 0 {
		t.Errorf("Expected 0 turret scores after clear, got %d", len(turretScores))
	}

	compassScores, _ := store.TopScores("compass", 10)
	if len(compassScores) != 1 {
		t.Errorf("Compass scores should not be affected by clearing turret")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{SceneID: "turret", Score: 70, Ticks: 1800, Seed: 42})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("SaveRun should assign a run id")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a stored run")
	}
	if got.SceneID != "turret" || got.Score != 70 || got.Ticks != 1800 || got.Seed != 42 {
		t.Errorf("RunByID() = %+v", got)
	}

	// Explicit ids are kept, and are unique
	fixed := uuid.MustParse("6f1c2a4e-8d3b-4c1a-9e7f-0a1b2c3d4e5f")
	if _, err := store.SaveRun(Run{RunID: fixed, SceneID: "compass"}); err != nil {
		t.Fatalf("SaveRun() with explicit id failed: %v", err)
	}
	if _, err := store.SaveRun(Run{RunID: fixed, SceneID: "compass"}); err == nil {
		t.Error("SaveRun() should reject a duplicate run id")
	}

	missing, err := store.RunByID(uuid.New())
	if err != nil || missing != nil {
		t.Errorf("RunByID() for unknown id = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreRunDurationUsesTickRate(t *testing.T) {
	store := openTestStore(t)

	slow, err := store.SaveRun(Run{SceneID: "turret", Score: 5, Ticks: 1800, TickRate: 30})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	unset, err := store.SaveRun(Run{SceneID: "turret", Score: 5, Ticks: 1800})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	tests := []struct {
		name     string
		id       uuid.UUID
		rate     int
		duration time.Duration
	}{
		{"30 fps", slow, 30, time.Minute},
		{"default rate", unset, DefaultTickRate, 30 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.RunByID(tc.id)
			if err != nil || got == nil {
				t.Fatalf("RunByID() = %v, %v", got, err)
			}
			if got.TickRate != tc.rate {
				t.Errorf("TickRate = %d, expected %d", got.TickRate, tc.rate)
			}
			if got.Duration() != tc.duration {
				t.Errorf("Duration() = %v, expected %v", got.Duration(), tc.duration)
			}
		})
	}
}

func TestStoreMigratesTickRate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL UNIQUE,
		scene_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		ticks INTEGER NOT NULL DEFAULT 0,
		seed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err == nil {
		_, err = db.Exec("INSERT INTO scores (run_id, scene_id, score, ticks) VALUES (?, 'turret', 9, 120)", uuid.NewString())
	}
	db.Close()
	if err != nil {
		t.Fatalf("seeding old schema failed: %v", err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("RecentRuns() = %v, %v", runs, err)
	}
	if runs[0].TickRate != DefaultTickRate || runs[0].Duration() != 2*time.Second {
		t.Errorf("migrated run = %+v", runs[0])
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("turret")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (SceneStats{}) {
		t.Errorf("Stats() on an empty scene = %+v, expected zero", empty)
	}

	for _, run := range []Run{
		{SceneID: "turret", Score: 40, Ticks: 600},
		{SceneID: "turret", Score: 95, Ticks: 1200},
		{SceneID: "compass", Score: 500, Ticks: 60},
	} {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.Stats("turret")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := SceneStats{Runs: 2, Best: 95, Ticks: 1800}
	if got != want {
		t.Errorf("Stats() = %+v, expected %+v", got, want)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("turret", 10)
	store.SaveScore("compass", 20)
	store.SaveScore("turret", 30)

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Score != 30 || runs[1].Score != 20 {
		t.Errorf("RecentRuns() order = %d, %d", runs[0].Score, runs[1].Score)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}
