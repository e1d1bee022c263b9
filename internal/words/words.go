// apps/go-server/internal/words/words.go
//
// Word supply for new games.
//
// Responsibilities:
//   - Load the word list from a file or fall back to the embedded default (assets/words.txt).
//   - Pick words uniformly at random (List); see daily.go for the word-of-the-day supplier.
//
// Constraints:
//   • Words must be non-empty and purely alphabetic; other lines are dropped.
//   • Case is preserved exactly as written in the list.
//   • Blank lines and lines starting with # are ignored.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode"

	"github.com/robalobadob/hangman/apps/go-server/assets"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: list is empty")

// Supplier hands out the secret word for a new game.
type Supplier interface {
	Word() string
}

// List is an immutable set of candidate words.
type List struct {
	words []string
}

// Load reads words from path, or from the embedded default list when path is empty.
func Load(path string) (*List, error) {
	var (
		f   io.ReadCloser
		err error
	)
	if path == "" {
		f, err = assets.FS.Open(assets.WordsFile)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := parseLines(f)
	if err != nil {
		return nil, err
	}
	return New(raw...)
}

// New builds a List from ws, dropping entries that are not purely alphabetic.
func New(ws ...string) (*List, error) {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		w = strings.TrimSpace(w)
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: out}, nil
}

// parseLines returns the trimmed lines of r, skipping blanks and # comments.
func parseLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// isAlpha reports whether s consists only of letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Word returns a cryptographically random word from the list.
func (l *List) Word() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[n.Int64()]
}

// At returns the i-th word.
func (l *List) At(i int) string { return l.words[i] }

// Len returns the number of loaded words.
func (l *List) Len() int { return len(l.words) }
