package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestHighscoreUpsert(t *testing.T) {
	store := openTestStore(t)
	key := "NORMAL|wrap=0|maze=0"

	// Unplayed ruleset reads as zero
	score, err := store.Highscore(key)
	if err != nil {
		t.Fatalf("Highscore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for unplayed ruleset, got %d", score)
	}

	if err := store.SetHighscore(key, 100); err != nil {
		t.Fatalf("SetHighscore() failed: %v", err)
	}
	if score, _ = store.Highscore(key); score != 100 {
		t.Errorf("Expected 100, got %d", score)
	}

	// A second write replaces the single row for the key
	if err := store.SetHighscore(key, 250); err != nil {
		t.Fatalf("SetHighscore() failed: %v", err)
	}
	if score, _ = store.Highscore(key); score != 250 {
		t.Errorf("Expected 250 after upsert, got %d", score)
	}

	entries, err := store.AllHighscores()
	if err != nil {
		t.Fatalf("AllHighscores() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected a single row after upsert, got %d", len(entries))
	}
}

func TestHighscoresPerRuleset(t *testing.T) {
	store := openTestStore(t)

	store.SetHighscore("EASY|wrap=0|maze=0", 120)
	store.SetHighscore("NORMAL|wrap=1|maze=0", 340)
	store.SetHighscore("HARD|wrap=0|maze=1", 80)

	// Each key keeps its own best
	if score, _ := store.Highscore("NORMAL|wrap=1|maze=0"); score != 340 {
		t.Errorf("Expected 340, got %d", score)
	}
	if score, _ := store.Highscore("HARD|wrap=0|maze=1"); score != 80 {
		t.Errorf("Expected 80, got %d", score)
	}

	entries, err := store.AllHighscores()
	if err != nil {
		t.Fatalf("AllHighscores() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	// Sorted by score descending
	if entries[0].Score != 340 || entries[1].Score != 120 || entries[2].Score != 80 {
		t.Errorf("Entries not sorted by score: %v", entries)
	}
	if entries[0].Ruleset != "NORMAL|wrap=1|maze=0" {
		t.Errorf("Expected NORMAL|wrap=1|maze=0 first, got %s", entries[0].Ruleset)
	}
}

func TestRecordAndListRounds(t *testing.T) {
	store := openTestStore(t)
	key := "EASY|wrap=0|maze=1"

	ids := make(map[string]bool)
	for _, score := range []int{100, 200, 300} {
		id, err := store.RecordRound(RoundRecord{
			Ruleset:      key,
			Score:        score,
			DurationSecs: 45,
			EndReason:    "wall",
		})
		if err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
		if id == "" {
			t.Fatal("RecordRound() returned an empty ID")
		}
		ids[id] = true
	}
	if len(ids) != 3 {
		t.Errorf("Expected 3 distinct generated IDs, got %d", len(ids))
	}

	// A caller-provided ID is preserved
	id, err := store.RecordRound(RoundRecord{
		ID:        "fixed-id",
		Ruleset:   "HARD|wrap=0|maze=0",
		Score:     50,
		EndReason: "self",
	})
	if err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("Expected fixed-id back, got %s", id)
	}

	all, err := store.RecentRounds("", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 rounds total, got %d", len(all))
	}

	filtered, err := store.RecentRounds(key, 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(filtered) != 3 {
		t.Errorf("Expected 3 rounds for %s, got %d", key, len(filtered))
	}
	for _, r := range filtered {
		if r.Ruleset != key {
			t.Errorf("Filtered round has ruleset %s", r.Ruleset)
		}
		if r.EndReason != "wall" {
			t.Errorf("Expected end reason wall, got %s", r.EndReason)
		}
	}
}

func TestRecentRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 8; i++ {
		store.RecordRound(RoundRecord{Ruleset: "t", Score: i * 10, EndReason: "wall"})
	}

	rounds, err := store.RecentRounds("t", 5)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 5 {
		t.Errorf("Expected 5 rounds with limit, got %d", len(rounds))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	key := "NORMAL|wrap=0|maze=0"

	// No rounds yet
	stats, err := store.Stats(key)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.Best != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, score := range []int{100, 200, 300} {
		store.RecordRound(RoundRecord{Ruleset: key, Score: score, EndReason: "self"})
	}

	stats, err = store.Stats(key)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 {
		t.Errorf("Expected 3 rounds, got %d", stats.Rounds)
	}
	if stats.Best != 300 {
		t.Errorf("Expected best 300, got %d", stats.Best)
	}
	if stats.TotalScore != 600 {
		t.Errorf("Expected total 600, got %d", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestAllStats(t *testing.T) {
	store := openTestStore(t)

	store.RecordRound(RoundRecord{Ruleset: "a", Score: 10, EndReason: "wall"})
	store.RecordRound(RoundRecord{Ruleset: "a", Score: 30, EndReason: "wall"})
	store.RecordRound(RoundRecord{Ruleset: "b", Score: 99, EndReason: "obstacle"})

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 rulesets, got %d", len(stats))
	}
	if stats["a"].Rounds != 2 || stats["a"].Best != 30 {
		t.Errorf("Unexpected stats for a: %+v", stats["a"])
	}
	if stats["b"].Rounds != 1 || stats["b"].Best != 99 {
		t.Errorf("Unexpected stats for b: %+v", stats["b"])
	}
}

func TestReset(t *testing.T) {
	store := openTestStore(t)

	store.SetHighscore("keep", 100)
	store.SetHighscore("drop", 200)
	store.RecordRound(RoundRecord{Ruleset: "keep", Score: 100, EndReason: "wall"})
	store.RecordRound(RoundRecord{Ruleset: "drop", Score: 200, EndReason: "wall"})

	if err := store.Reset("drop"); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if score, _ := store.Highscore("drop"); score != 0 {
		t.Errorf("Expected 0 after reset, got %d", score)
	}
	if rounds, _ := store.RecentRounds("drop", 10); len(rounds) != 0 {
		t.Errorf("Expected no rounds after reset, got %d", len(rounds))
	}

	// The other ruleset is untouched
	if score, _ := store.Highscore("keep"); score != 100 {
		t.Errorf("Reset touched another ruleset: got %d", score)
	}
	if rounds, _ := store.RecentRounds("keep", 10); len(rounds) != 1 {
		t.Errorf("Reset removed rounds of another ruleset")
	}
}

func TestStoreCreatesNestedDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
