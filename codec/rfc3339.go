// Package codec converts wire string values into domain types.
package codec

import (
	"time"

	figskema "github.com/reoring/figskema"
)

// ParseTime converts an RFC 3339 timestamp (fractional seconds optional) into
// time.Time. Failures are Issues with code invalid_format.
func ParseTime(s string) (time.Time, error) {
	t, err := parseRFC3339(s)
	if err != nil {
		return time.Time{}, figskema.Issues{{
			Path:    "/",
			Code:    figskema.CodeInvalidFormat,
			Message: figskema.Message(figskema.CodeInvalidFormat, map[string]any{"format": "RFC3339"}),
			Hint:    s,
			Cause:   err,
			Offset:  -1,
			Params:  map[string]any{"format": "RFC3339"},
		}}
	}
	return t, nil
}

// FormatTime renders t in UTC using the shortest RFC 3339 form.
func FormatTime(t time.Time) string {
	// Go trims trailing zeros in RFC3339Nano
	return t.UTC().Format(time.RFC3339Nano)
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
