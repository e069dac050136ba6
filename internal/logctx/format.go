package logctx

import (
	"fmt"
	"strings"
	"time"
)

// Stringify full event
func (event Event) Format() (text string) {
	// Only print parts that are present
	var parts []string
	if !event.Timestamp.IsZero() {
		parts = append(parts, fmt.Sprintf("[%s]", padTimestamp(event.Timestamp)))
	}

	if len(event.Tags) > 0 {
		tagPrefixes := "["
		tagPrefixes += strings.Join(event.Tags, "/")
		tagPrefixes += "]"
		parts = append(parts, tagPrefixes)
	}

	if event.Severity != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Severity))
	}

	if event.Message != "" {
		parts = append(parts, event.Message)
	}

	text = strings.Join(parts, " ")
	// No newline, message creator determines newlines
	return
}

// Ensures fixed length strings for timestamps
func padTimestamp(timestamp time.Time) (formatted string) {
	formatted = timestamp.Format(time.RFC3339Nano)

	majorFields := strings.Split(formatted, ".")
	if len(majorFields) != 2 {
		return
	}

	tsPrefix := majorFields[0]
	fractional := majorFields[1]

	// Fractional field carries the zone suffix (Z, +hh:mm, or -hh:mm)
	zoneStart := strings.IndexAny(fractional, "Z+-")
	if zoneStart < 0 {
		return
	}

	nanoseconds := fractional[:zoneStart]
	timezoneOffset := fractional[zoneStart:]

	// RFC3339Nano trims trailing zeros, restore to 9 digits
	for len(nanoseconds) < 9 {
		nanoseconds += "0"
	}

	// Rebuild the timestamp with padded nanoseconds and the original timezone offset
	formatted = fmt.Sprintf("%s.%s%s", tsPrefix, nanoseconds, timezoneOffset)
	return
}
