package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Result is one finished game.
type Result struct {
	GameID            string    `json:"gameId"`
	Word              string    `json:"word"`
	Status            string    `json:"status"`
	IncorrectGuesses  []string  `json:"incorrectGuesses"`
	RemainingAttempts int       `json:"remainingAttempts"`
	FinishedAt        time.Time `json:"finishedAt"`
}

// Stats are totals over every recorded game.
type Stats struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
}

// Recorder receives finished games.
//
//go:generate mockgen -destination=../httpserver/mock_recorder_test.go -package=httpserver github.com/robalobadob/hangman/apps/go-server/internal/history Recorder
type Recorder interface {
	Record(ctx context.Context, r Result) error
	Stats(ctx context.Context) (Stats, error)
	Recent(ctx context.Context, limit int) ([]Result, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts r. A game already recorded is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO finished_games(game_id, word, status, incorrect_guesses, remaining_attempts)
		VALUES(?,?,?,?,?)`,
		r.GameID, r.Word, r.Status, strings.Join(r.IncorrectGuesses, ","), r.RemainingAttempts,
	)
	return err
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
		        COALESCE(SUM(status = 'Won'), 0),
		        COALESCE(SUM(status = 'Lost'), 0)
		FROM finished_games`,
	).Scan(&st.Played, &st.Won, &st.Lost)
	return st, err
}

// Recent returns the most recently finished games, newest first.
// A non-positive limit means 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, word, status, incorrect_guesses, remaining_attempts, finished_at
		FROM finished_games
		ORDER BY finished_at DESC, rowid DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var (
			r         Result
			incorrect string
			finished  string
		)
		if err := rows.Scan(&r.GameID, &r.Word, &r.Status, &incorrect, &r.RemainingAttempts, &finished); err != nil {
			return nil, err
		}
		r.IncorrectGuesses = []string{}
		if incorrect != "" {
			r.IncorrectGuesses = strings.Split(incorrect, ",")
		}
		t, err := time.Parse(time.RFC3339Nano, finished)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at for %s: %w", r.GameID, err)
		}
		r.FinishedAt = t
		out = append(out, r)
	}
	return out, rows.Err()
}

// Nop discards results. Used when history is disabled.
type Nop struct{}

func (Nop) Record(context.Context, Result) error { return nil }

func (Nop) Stats(context.Context) (Stats, error) { return Stats{}, nil }

func (Nop) Recent(context.Context, int) ([]Result, error) { return []Result{}, nil }

var (
	_ Recorder = (*Store)(nil)
	_ Recorder = Nop{}
)
