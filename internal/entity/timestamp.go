package entity

import "time"

// TimestampLayout is the ISO-8601 form stored in created_at columns (always UTC,
// microsecond precision, no zone suffix).
const TimestampLayout = "2006-01-02T15:04:05.000000"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
