package worktime

import "time"

// TimestampLayout is the persisted form of entry and exit times: local time,
// second resolution, no offset.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses a persisted timestamp in the local zone. Values that
// do not match TimestampLayout exactly yield a *ParseError.
func ParseTimestamp(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, value, time.Local)
	if err != nil {
		return time.Time{}, &ParseError{Field: field, Value: value, Err: err}
	}
	return t, nil
}
