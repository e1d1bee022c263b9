package history

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	for i := 0; i < 2; i++ {
		db, err := Open(path)
		if err != nil {
			t.Fatalf("Open #%d: %v", i+1, err)
		}
		var n int
		if err := db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("Open #%d: %d migrations recorded, want 1", i+1, n)
		}
		_ = db.Close()
	}
}

func TestRecordAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	results := []Result{
		{GameID: "g1", Word: "cat", Status: "Won", IncorrectGuesses: []string{"z"}, RemainingAttempts: 5},
		{GameID: "g2", Word: "Banana", Status: "Lost", IncorrectGuesses: []string{"q", "w", "e", "r", "t", "y"}, RemainingAttempts: 0},
		{GameID: "g3", Word: "Airport", Status: "Won", IncorrectGuesses: nil, RemainingAttempts: 6},
	}
	for _, r := range results {
		if err := s.Record(ctx, r); err != nil {
			t.Fatalf("Record(%s): %v", r.GameID, err)
		}
	}
	// Recording the same game again is a no-op.
	if err := s.Record(ctx, results[0]); err != nil {
		t.Fatalf("Record duplicate: %v", err)
	}

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if want := (Stats{Played: 3, Won: 2, Lost: 1}); st != want {
		t.Errorf("Stats = %+v, want %+v", st, want)
	}
}

func TestRecent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := s.Record(ctx, Result{GameID: id, Word: "cat", Status: "Won", RemainingAttempts: 6}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Record(ctx, Result{GameID: "d", Word: "dog", Status: "Lost", IncorrectGuesses: []string{"x", "y"}}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].GameID != "d" || got[1].GameID != "c" {
		t.Errorf("order = [%s %s], want [d c]", got[0].GameID, got[1].GameID)
	}
	if !reflect.DeepEqual(got[0].IncorrectGuesses, []string{"x", "y"}) {
		t.Errorf("incorrect guesses = %v", got[0].IncorrectGuesses)
	}
	if len(got[1].IncorrectGuesses) != 0 {
		t.Errorf("expected no incorrect guesses, got %v", got[1].IncorrectGuesses)
	}
	if got[0].FinishedAt.IsZero() {
		t.Error("FinishedAt not parsed")
	}
}

func TestRecentRejectsCorruptTimestamp(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO finished_games (game_id, word, status, remaining_attempts, finished_at)
		VALUES ('bad', 'cat', 'Won', 6, 'yesterday')`,
	); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Recent(ctx, 10); err == nil {
		t.Error("Recent: expected error for unparseable finished_at")
	}
}
