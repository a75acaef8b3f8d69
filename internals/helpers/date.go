package helper

import (
	"fmt"
	"time"
)

const dateLayoutYMD = "2006-01-02"

// ParseDateYMD parse tanggal "YYYY-MM-DD" (UTC, jam 00:00).
func ParseDateYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayoutYMD, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDateYMD kebalikan dari ParseDateYMD.
func FormatDateYMD(t time.Time) string {
	return t.Format(dateLayoutYMD)
}

// TruncateToDay memotong timestamp ke awal hari (UTC).
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
