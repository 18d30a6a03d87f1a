package storage

import (
	"os"
	"path/filepath"
	"sync"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

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
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.RecordIssue("a1b2c3"); err != nil {
		t.Fatalf("RecordIssue() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	u, err := store.User("a1b2c3")
	if err != nil || u == nil {
		t.Fatalf("User() = %v, %v; expected entry after reopen", u, err)
	}
}

func TestRecordIssueCounts(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if err := store.RecordIssue("abc123"); err != nil {
			t.Fatalf("RecordIssue() failed: %v", err)
		}
	}
	if err := store.RecordIssue("def456"); err != nil {
		t.Fatalf("RecordIssue() failed: %v", err)
	}

	u, err := store.User("abc123")
	if err != nil {
		t.Fatalf("User() failed: %v", err)
	}
	if u == nil {
		t.Fatal("User() returned nil for a known id")
	}
	if u.PuzzlesIssued != 3 {
		t.Errorf("PuzzlesIssued = %d, expected 3", u.PuzzlesIssued)
	}
	if u.FirstSeen.IsZero() || u.LastSeen.IsZero() {
		t.Errorf("timestamps not parsed: first=%v last=%v", u.FirstSeen, u.LastSeen)
	}
	if u.LastSeen.Before(u.FirstSeen.Add(-time.Second)) {
		t.Errorf("LastSeen %v is before FirstSeen %v", u.LastSeen, u.FirstSeen)
	}
}

func TestRecordIssueRejectsEmptyID(t *testing.T) {
	store := openTestStore(t)
	if err := store.RecordIssue(""); err == nil {
		t.Error("RecordIssue(\"\") should fail")
	}
}

func TestUserUnknown(t *testing.T) {
	store := openTestStore(t)

	u, err := store.User("ffffff")
	if err != nil {
		t.Fatalf("User() failed: %v", err)
	}
	if u != nil {
		t.Errorf("User(unknown) = %+v, expected nil", u)
	}
}

func TestUsersOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	issues := map[string]int{"aaaaaa": 1, "bbbbbb": 4, "cccccc": 2, "dddddd": 2}
	for id, n := range issues {
		for i := 0; i < n; i++ {
			if err := store.RecordIssue(id); err != nil {
				t.Fatalf("RecordIssue() failed: %v", err)
			}
		}
	}

	users, err := store.Users(3)
	if err != nil {
		t.Fatalf("Users() failed: %v", err)
	}
	expected := []string{"bbbbbb", "cccccc", "dddddd"}
	if len(users) != len(expected) {
		t.Fatalf("Users(3) returned %d entries, expected %d", len(users), len(expected))
	}
	for i, id := range expected {
		if users[i].UserID != id {
			t.Errorf("Users()[%d] = %s, expected %s", i, users[i].UserID, id)
		}
	}

	all, err := store.Users(0)
	if err != nil {
		t.Fatalf("Users(0) failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Users(0) returned %d entries, expected 4", len(all))
	}
}

func TestTotals(t *testing.T) {
	store := openTestStore(t)

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals != (Totals{}) {
		t.Errorf("empty Totals() = %+v, expected zero", totals)
	}

	store.RecordIssue("aaaaaa")
	store.RecordIssue("aaaaaa")
	store.RecordIssue("bbbbbb")

	totals, err = store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Users != 2 || totals.Puzzles != 3 {
		t.Errorf("Totals() = %+v, expected {2 3}", totals)
	}
}

func TestForgetUser(t *testing.T) {
	store := openTestStore(t)

	store.RecordIssue("aaaaaa")
	if err := store.ForgetUser("aaaaaa"); err != nil {
		t.Fatalf("ForgetUser() failed: %v", err)
	}
	if u, _ := store.User("aaaaaa"); u != nil {
		t.Errorf("User() after ForgetUser = %+v, expected nil", u)
	}
}

func TestRecordIssueConcurrent(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.RecordIssue("shared"); err != nil {
				t.Errorf("RecordIssue() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	u, err := store.User("shared")
	if err != nil || u == nil {
		t.Fatalf("User() = %v, %v", u, err)
	}
	if u.PuzzlesIssued != 20 {
		t.Errorf("PuzzlesIssued = %d, expected 20", u.PuzzlesIssued)
	}
}
