package storage

import "testing"

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenInMemory(t *testing.T) {
	store := openTestStore(t)

	// A fresh store has no scores.
	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("fresh store has %d scores", len(scores))
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game must not leak into flappy's board.
	if _, err := store.SaveScore("racer", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, expected 3", len(scores))
	}
	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, s.Score, want[i])
		}
		if s.GameID != "flappy" {
			t.Errorf("scores[%d].GameID = %q", i, s.GameID)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 10; i++ {
		if _, err := store.SaveScore("snake", i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("got %d scores, expected 3", len(scores))
	}
}

func TestTopScoresTieBreaksByInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	id1, err := store.SaveScore("snake", 7)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := store.SaveScore("snake", 7)
	if err != nil {
		t.Fatal(err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 || scores[0].ID != id1 || scores[1].ID != id2 {
		t.Errorf("tie order wrong: %+v (ids %d, %d)", scores, id1, id2)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet.
	hs, err := store.HighScore("tictactoe")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("high score = %d on empty store", hs)
	}

	store.SaveScore("tictactoe", 1)
	store.SaveScore("tictactoe", 3)
	store.SaveScore("tictactoe", 1)

	hs, err = store.HighScore("tictactoe")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 3 {
		t.Errorf("high score = %d, expected 3", hs)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("racer", 10)
	store.SaveScore("racer", 20)

	stats, err := store.Stats("racer")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 20 {
		t.Errorf("HighScore = %d, expected 20", stats.HighScore)
	}
	if stats.AvgScore != 15 {
		t.Errorf("AvgScore = %v, expected 15", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 5)
	store.SaveScore("flappy", 8)
	store.SaveScore("flappy", 2)

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got stats for %d games, expected 2", len(all))
	}
	if all["flappy"].GamesCount != 2 || all["flappy"].HighScore != 8 {
		t.Errorf("flappy stats = %+v", all["flappy"])
	}
	if all["snake"].GamesCount != 1 {
		t.Errorf("snake stats = %+v", all["snake"])
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 5)
	store.SaveScore("flappy", 8)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("snake", 10)
	if len(scores) != 0 {
		t.Errorf("snake scores survived clear: %d", len(scores))
	}
	scores, _ = store.TopScores("flappy", 10)
	if len(scores) != 1 {
		t.Errorf("flappy scores affected by snake clear: %d", len(scores))
	}
}
