package domain

import (
	"fmt"
	"time"
)

// dateKey is the calendar key layout, YYYY-MM-DD.
const dateKey = "2006-01-02"

// tashkent is the fixed civil timezone all calendar keys are computed in,
// regardless of the host timezone. Asia/Tashkent has no DST; if the IANA
// database is unavailable we fall back to the equivalent fixed offset.
var tashkent = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tashkent")
	if err != nil {
		return time.FixedZone("+05", 5*60*60)
	}
	return loc
}()

// Today returns the current calendar key in the Tashkent timezone.
func Today() string {
	return time.Now().In(tashkent).Format(dateKey)
}

// AddDays shifts a calendar key by n days. Malformed keys are returned as is.
func AddDays(key string, n int) string {
	t, err := time.ParseInLocation(dateKey, key, tashkent)
	if err != nil {
		return key
	}
	return t.AddDate(0, 0, n).Format(dateKey)
}

// PrettyDate reformats a YYYY-MM-DD key for display as DD.MM.YYYY.
func PrettyDate(key string) string {
	t, err := time.Parse(dateKey, key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}
