package utils

import (
	"time"
)

// FormatDate formats t as the YYYY-MM-DD form the bot API accepts for date ranges.
// A zero time yields an empty string so the parameter is omitted.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
