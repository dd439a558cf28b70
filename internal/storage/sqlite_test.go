package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordSession(Session{GameID: "warior", Score: 77}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("warior")
	if err != nil || high != 77 {
		t.Errorf("HighScore() = %d, %v, expected 77", high, err)
	}
}

func TestStoreRecordAndTopScores(t *testing.T) {
	store := openTestStore(t)

	sessions := []Session{
		{GameID: "warior", Score: 100, Duration: 30 * time.Second},
		{GameID: "warior", Score: 50, Duration: 10 * time.Second},
		{GameID: "warior", Score: 200, Duration: 95 * time.Second, Difficulty: "hard"},
		{GameID: "squares", Score: 500},
	}
	for _, s := range sessions {
		if _, err := store.RecordSession(s); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	scores, err := store.TopScores("warior", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []uint64{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Duration != 95*time.Second || scores[0].Difficulty != "hard" {
		t.Errorf("top entry = %+v, expected 95s on hard", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	other, err := store.TopScores("squares", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 1 || other[0].Score != 500 {
		t.Errorf("squares scores = %+v", other)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.RecordSession(Session{GameID: "warior", Score: uint64(i * 10)}); err != nil {
			t.Fatal(err)
		}
	}

	scores, err := store.TopScores("warior", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 5 || scores[0].Score != 140 {
		t.Errorf("TopScores(5) = %d entries, top %d", len(scores), scores[0].Score)
	}

	scores, err = store.TopScores("warior", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 10 {
		t.Errorf("TopScores(0) = %d entries, expected default 10", len(scores))
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("nonexistent")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for nonexistent game, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordSession(Session{GameID: "warior", Score: 100})
	store.RecordSession(Session{GameID: "squares", Score: 300})

	if err := store.ClearScores("warior"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("warior", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	scores, _ = store.TopScores("squares", 10)
	if len(scores) != 1 {
		t.Errorf("Clearing warior should not affect squares, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("warior")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.RecordSession(Session{GameID: "warior", Score: 100, Duration: time.Minute})
	store.RecordSession(Session{GameID: "warior", Score: 300, Duration: 2 * time.Minute})

	stats, err := store.GetGameStats("warior")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.PlayTime != 3*time.Minute {
		t.Errorf("PlayTime = %v, expected 3m", stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		in   any
		want time.Time
	}{
		{now, now},
		{"2024-05-01 12:30:00", now},
		{"yesterday", time.Time{}},
		{nil, time.Time{}},
	}
	for _, tt := range tests {
		if got := parseTime(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseTime(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
