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

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

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

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("rockets", "ada", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("rockets_duel", "bob", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("rockets", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("score %d = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].Player != "ada" {
		t.Errorf("player = %q, expected ada", scores[0].Player)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("rockets", "", (i+1)*100) //nolint:errcheck
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit limit", 3, 3},
		{"default limit", 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores("rockets", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tc.want {
				t.Errorf("got %d scores, expected %d", len(scores), tc.want)
			}
			if scores[0].Score != 500 {
				t.Errorf("top score = %d, expected 500", scores[0].Score)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("rockets")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for empty game, got %d", hs)
	}

	store.SaveScore("rockets", "", 7)  //nolint:errcheck
	store.SaveScore("rockets", "", 12) //nolint:errcheck

	if hs, _ = store.HighScore("rockets"); hs != 12 {
		t.Errorf("Expected high score 12, got %d", hs)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("rockets", "", 5)                             //nolint:errcheck
	store.SaveScore("rockets_duel", "", 9)                        //nolint:errcheck
	store.SaveRun(RunRecord{GameID: "rockets", FuelCollected: 1}) //nolint:errcheck

	if err := store.ClearScores("rockets"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if all, _ := store.AllScores("rockets"); len(all) != 0 {
		t.Errorf("Expected no rockets scores, got %d", len(all))
	}
	if runs, _ := store.RecentRuns("rockets", 10); len(runs) != 0 {
		t.Errorf("Expected no rockets runs, got %d", len(runs))
	}
	if all, _ := store.AllScores("rockets_duel"); len(all) != 1 {
		t.Errorf("Expected duel scores untouched, got %d", len(all))
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		_, err := store.SaveRun(RunRecord{
			GameID:        "rockets",
			Player:        "ada",
			Score:         i,
			FuelCollected: i * 2,
			Ticks:         i * 100,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("rockets", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, expected 2", len(runs))
	}
	if runs[0].Ticks != 300 || runs[1].Ticks != 200 {
		t.Errorf("runs not newest first: %+v", runs)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("rockets", "", 4)                                         //nolint:errcheck
	store.SaveScore("rockets", "", 8)                                         //nolint:errcheck
	store.SaveRun(RunRecord{GameID: "rockets", FuelCollected: 4, Ticks: 90})  //nolint:errcheck
	store.SaveRun(RunRecord{GameID: "rockets", FuelCollected: 8, Ticks: 150}) //nolint:errcheck

	stats, err := store.GetGameStats("rockets")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 || stats.HighScore != 8 || stats.TotalScore != 12 {
		t.Errorf("stats = %+v, expected 2 games, high 8, total 12", stats)
	}
	if stats.AvgScore != 6 {
		t.Errorf("avg = %v, expected 6", stats.AvgScore)
	}
	if stats.FuelPerRun != 6 || stats.LongestTicks != 150 {
		t.Errorf("fuel/run %v longest %d, expected 6 and 150", stats.FuelPerRun, stats.LongestTicks)
	}

	empty, err := store.GetGameStats("rockets_duel")
	if err != nil {
		t.Fatalf("GetGameStats(empty) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("rockets", "", 3)      //nolint:errcheck
	store.SaveScore("rockets_duel", "", 5) //nolint:errcheck

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("got %d games, expected 2", len(all))
	}
	if all["rockets_duel"].HighScore != 5 {
		t.Errorf("duel high score = %d, expected 5", all["rockets_duel"].HighScore)
	}
}
