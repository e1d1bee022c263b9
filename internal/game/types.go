// apps/go-server/internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Status: coarse classification of a game (in progress, won, lost).
//   - Game: state for a single in-progress or finished game.
//   - Snapshot: read-only view returned by queries and guesses.

package game

import (
	"errors"
	"sync"
)

// MaxAttempts is the number of incorrect guesses a new game allows.
const MaxAttempts = 6

// Status represents the outcome classification of a game.
type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusWon        Status = "Won"
	StatusLost       Status = "Lost"
)

// Guess rejections. None of them mutate the game.
var (
	ErrInvalidGuess   = errors.New("invalid guess")
	ErrDuplicateGuess = errors.New("duplicate guess")
	ErrGameOver       = errors.New("game already over")
)

// Game holds the state of a single hangman game.
// All access after construction goes through methods that hold mu.
type Game struct {
	ID   string // Unique game identifier.
	Word string // Secret word, case preserved.

	mu        sync.Mutex
	correct   []string // lowercase letters found in Word, in guess order
	incorrect []string // lowercase letters not in Word, in guess order
	remaining int      // attempts left, 0..MaxAttempts
}

// Snapshot is the externally visible state of a game.
// Word holds the mask, or the secret word once the game is lost.
type Snapshot struct {
	ID                string   `json:"id"`
	Status            Status   `json:"status"`
	Word              string   `json:"word"`
	IncorrectGuesses  []string `json:"incorrect_guesses"`
	RemainingAttempts int      `json:"remaining_attempts"`
}
