package storage

import "testing"

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("getaway", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("getaway", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "getaway" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("getaway", (i+1)*100)
	}

	scores, err := store.TopScores("getaway", 3)
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

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{30, 10, 20} {
		store.SaveScore("getaway", s)
	}

	recent, err := store.RecentScores("getaway", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 20 || recent[1].Score != 10 {
		t.Errorf("RecentScores() = %v, want [20 10]", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("getaway")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("getaway", 100)
	store.SaveScore("getaway", 300)
	store.SaveScore("getaway", 200)

	high, err = store.HighScore("getaway")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreMarksRecords(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score  int
		record bool
	}{
		{100, true},
		{50, false},
		{100, false}, // a tie is not a record
		{150, true},
	}
	for _, tt := range tests {
		entry, err := store.SaveScore("getaway", tt.score)
		if err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", tt.score, err)
		}
		if entry.Record != tt.record || entry.ID == 0 {
			t.Errorf("SaveScore(%d) = %+v, want record=%v", tt.score, entry, tt.record)
		}
	}

	recent, err := store.RecentScores("getaway", 4)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	for i, tt := range tests {
		got := recent[len(recent)-1-i]
		if got.Record != tt.record {
			t.Errorf("stored run %d record = %v, want %v", tt.score, got.Record, tt.record)
		}
	}

	stats, err := store.GetGameStats("getaway")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Records != 2 {
		t.Errorf("Records = %d, want 2", stats.Records)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("getaway", 100)
	store.SaveScore("getaway", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("getaway"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("getaway", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("Other games should not be affected by clearing getaway")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("getaway")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("getaway", 100)
	store.SaveScore("getaway", 300)

	stats, err = store.GetGameStats("getaway")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
