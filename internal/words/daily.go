package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Daily gives every game started on the same UTC date the same secret word,
// so players comparing notes on "today's word" all face the same puzzle.
// The salt keeps the sequence unguessable from the list order alone.
type Daily struct {
	list *List
	salt string
	now  func() time.Time
}

// NewDaily builds a Daily supplier over list keyed by salt.
func NewDaily(list *List, salt string) *Daily {
	return &Daily{list: list, salt: salt, now: time.Now}
}

// Word returns today's word.
func (d *Daily) Word() string {
	return d.list.At(dayIndex(d.now(), d.salt, d.list.Len()))
}

// dateKey is the UTC calendar day of t; the daily word rolls over at UTC midnight.
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// dayIndex maps a day onto [0, n) as HMAC-SHA256(salt, dateKey) mod n.
func dayIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(dateKey(t)))
	sum := mac.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
