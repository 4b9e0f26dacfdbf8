package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2025-03-11", AddDays("2025-03-10", 1))
	assert.Equal(t, "2025-03-09", AddDays("2025-03-10", -1))
	assert.Equal(t, "2025-04-01", AddDays("2025-03-31", 1))
	assert.Equal(t, "2025-03-01", AddDays("2025-02-28", 1)) // not a leap year
}

func TestAddDays_MalformedKeyPassesThrough(t *testing.T) {
	assert.Equal(t, "not-a-date", AddDays("not-a-date", 1))
}

func TestPrettyDate(t *testing.T) {
	assert.Equal(t, "11.03.2025", PrettyDate("2025-03-11"))
	assert.Equal(t, "01.01.2026", PrettyDate("2026-01-01"))
	assert.Equal(t, "oops", PrettyDate("oops"))
}

func TestToday_UsesTashkentZone(t *testing.T) {
	got := Today()
	want := time.Now().In(tashkent).Format("2006-01-02")
	// Re-read if the test straddled midnight.
	if got != want {
		got = Today()
		want = time.Now().In(tashkent).Format("2006-01-02")
	}
	assert.Equal(t, want, got)
}
