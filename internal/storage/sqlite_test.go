package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Nested parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := testStore(t)

	matches := []MatchRecord{
		{Script: "sample", Columns: 3, Rows: 4, Players: 2, Winner: "B", Turns: 6},
		{Script: "sample", Columns: 3, Rows: 4, Players: 2, Winner: "A", Turns: 9},
		{Script: "classic", Columns: 10, Rows: 10, Players: 4, Winner: "", Turns: 40},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	all, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(all))
	}

	// Newest first
	if all[0].Script != "classic" {
		t.Errorf("Expected newest match first, got %q", all[0].Script)
	}
	if all[0].Winner != "" {
		t.Errorf("Expected empty winner for unfinished match, got %q", all[0].Winner)
	}

	sample, err := store.MatchesByScript("sample", 10)
	if err != nil {
		t.Fatalf("MatchesByScript() failed: %v", err)
	}
	if len(sample) != 2 {
		t.Errorf("Expected 2 sample matches, got %d", len(sample))
	}
	for _, m := range sample {
		if m.Columns != 3 || m.Rows != 4 || m.Players != 2 {
			t.Errorf("match fields not round-tripped: %+v", m)
		}
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store := testStore(t)

	for i := 0; i < 5; i++ {
		store.SaveMatch(MatchRecord{Script: "sample", Columns: 3, Rows: 4, Players: 2, Winner: "A", Turns: i + 1})
	}

	matches, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("Expected 3 matches with limit, got %d", len(matches))
	}
}

func TestStoreWinCounts(t *testing.T) {
	store := testStore(t)

	store.SaveMatch(MatchRecord{Script: "sample", Columns: 3, Rows: 4, Players: 2, Winner: "B", Turns: 6})
	store.SaveMatch(MatchRecord{Script: "sample", Columns: 3, Rows: 4, Players: 2, Winner: "B", Turns: 8})
	store.SaveMatch(MatchRecord{Script: "sample", Columns: 3, Rows: 4, Players: 2, Winner: "A", Turns: 12})
	store.SaveMatch(MatchRecord{Script: "sample", Columns: 3, Rows: 4, Players: 2, Winner: "", Turns: 4})
	store.SaveMatch(MatchRecord{Script: "other", Columns: 3, Rows: 4, Players: 2, Winner: "C", Turns: 5})

	counts, err := store.WinCounts("sample")
	if err != nil {
		t.Fatalf("WinCounts() failed: %v", err)
	}

	if counts["B"] != 2 || counts["A"] != 1 || counts[""] != 1 {
		t.Errorf("WinCounts = %v, want B:2 A:1 '':1", counts)
	}
	if _, ok := counts["C"]; ok {
		t.Error("WinCounts should not include other scripts")
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := testStore(t)

	store.SaveMatch(MatchRecord{Script: "sample", Columns: 3, Rows: 4, Players: 2, Winner: "A", Turns: 6})
	store.SaveMatch(MatchRecord{Script: "other", Columns: 3, Rows: 4, Players: 2, Winner: "B", Turns: 7})

	if err := store.ClearMatches("sample"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	sample, _ := store.MatchesByScript("sample", 10)
	if len(sample) != 0 {
		t.Errorf("Expected 0 sample matches after clear, got %d", len(sample))
	}

	other, _ := store.MatchesByScript("other", 10)
	if len(other) != 1 {
		t.Error("Other scripts should not be affected by clearing sample")
	}
}
