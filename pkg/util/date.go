package util

import "time"

// DateLayout is the calendar-date layout used on the wire and in cache keys.
const DateLayout = "2006-01-02"

// ParseDate parses YYYY-MM-DD as a UTC calendar day. Returns (t, true) on success.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateDefault parses a date or returns def if empty/invalid.
func ParseDateDefault(s string, def time.Time) time.Time {
	if t, ok := ParseDate(s); ok {
		return t
	}
	return def
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextDays returns n consecutive calendar days following after.
func NextDays(after time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	out := make([]time.Time, n)
	base := Day(after)
	for i := 0; i < n; i++ {
		out[i] = base.AddDate(0, 0, i+1)
	}
	return out
}
