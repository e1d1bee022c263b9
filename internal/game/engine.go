// apps/go-server/internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Create new games with MaxAttempts attempts and empty guess sets.
//   - Render the masked word by position (every occurrence of a letter is revealed).
//   - Validate and apply single-letter guesses.
//   - Track state transitions: InProgress → Won/Lost (both terminal).
//
// Notes:
//   - Word selection lives in the words package; the store passes the word in.
//   - Each Game carries its own mutex so guesses on one game never block another.
package game

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// New constructs a fresh game for word.
func New(id, word string) *Game {
	return &Game{
		ID:        id,
		Word:      word,
		correct:   []string{},
		incorrect: []string{},
		remaining: MaxAttempts,
	}
}

// RenderMask returns word with every position whose lowercase letter is not
// in correct replaced by "_". Guessed positions keep their original case.
func RenderMask(word string, correct []string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if slices.Contains(correct, string(unicode.ToLower(r))) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return strings.TrimSpace(b.String())
}

// IsValidGuess reports whether input is exactly one alphabetic character.
func IsValidGuess(input string) bool {
	if utf8.RuneCountInString(input) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(input)
	return unicode.IsLetter(r)
}

// ApplyGuess validates raw and applies it to the game.
//
// Rejections, checked in order, leave the game untouched:
//   - ErrInvalidGuess:   raw is not a single letter.
//   - ErrGameOver:       the game is already won or lost.
//   - ErrDuplicateGuess: the letter was tried before (either outcome).
//
// On success the letter is recorded as correct or incorrect (the latter costs
// one attempt) and the post-guess snapshot is returned.
func (g *Game) ApplyGuess(raw string) (Snapshot, error) {
	if !IsValidGuess(raw) {
		return Snapshot{}, ErrInvalidGuess
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status() != StatusInProgress {
		return Snapshot{}, ErrGameOver
	}
	letter := strings.ToLower(raw)
	if slices.Contains(g.correct, letter) || slices.Contains(g.incorrect, letter) {
		return Snapshot{}, ErrDuplicateGuess
	}

	if strings.Contains(strings.ToLower(g.Word), letter) {
		g.correct = append(g.correct, letter)
	} else {
		g.incorrect = append(g.incorrect, letter)
		if g.remaining > 0 {
			g.remaining--
		}
	}
	return g.snapshot(), nil
}

// Snapshot returns the current state without mutating the game.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// status evaluates the outcome in precedence order: Lost, Won, InProgress.
// Callers must hold g.mu.
func (g *Game) status() Status {
	if g.remaining <= 0 {
		return StatusLost
	}
	if !strings.Contains(RenderMask(g.Word, g.correct), "_") {
		return StatusWon
	}
	return StatusInProgress
}

// snapshot builds a Snapshot. Callers must hold g.mu.
func (g *Game) snapshot() Snapshot {
	st := g.status()
	word := RenderMask(g.Word, g.correct)
	if st == StatusLost {
		word = g.Word
	}
	return Snapshot{
		ID:                g.ID,
		Status:            st,
		Word:              word,
		IncorrectGuesses:  slices.Clone(g.incorrect),
		RemainingAttempts: g.remaining,
	}
}

// CorrectGuesses returns a copy of the correctly guessed letters in guess order.
func (g *Game) CorrectGuesses() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.correct)
}
