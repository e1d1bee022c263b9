package words

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	if got := dateKey(ts); got != "2026-03-01" {
		t.Errorf("dateKey = %q, want %q", got, "2026-03-01")
	}
}

func TestDayIndex(t *testing.T) {
	day := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)

	a := dayIndex(day, "salt", 20)
	if a < 0 || a >= 20 {
		t.Fatalf("index %d out of range", a)
	}
	if b := dayIndex(later, "salt", 20); a != b {
		t.Errorf("same date gave different indexes: %d vs %d", a, b)
	}
	if got := dayIndex(day, "salt", 0); got != 0 {
		t.Errorf("empty list index = %d, want 0", got)
	}
}

func TestDailyIsStableWithinADay(t *testing.T) {
	l, err := New("alpha", "bravo", "charlie", "delta", "echo")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDaily(l, "salt")

	d.now = func() time.Time { return time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC) }
	morning := d.Word()
	d.now = func() time.Time { return time.Date(2026, 10, 16, 22, 0, 0, 0, time.UTC) }
	if evening := d.Word(); morning != evening {
		t.Errorf("daily word changed within a day: %q vs %q", morning, evening)
	}
}
