// Package listutil holds the display helpers shared by the list and detail screens.
package listutil

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DisplayLayout is how every date is shown on screen.
const DisplayLayout = "Jan 2, 2006"

// InputLayout is the value format of an HTML date input.
const InputLayout = "2006-01-02"

// knownLayouts are the date shapes the backend has been seen to return.
var knownLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	InputLayout,
	DisplayLayout,
	"January 2, 2006",
}

// parseDate tries each known layout in turn.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range knownLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders value as "Jan 2, 2006".
// POST: Unparseable values are returned verbatim; empty stays empty
func FormatDate(value string) string {
	if t, ok := parseDate(value); ok {
		return t.Format(DisplayLayout)
	}
	return value
}

// InputDate renders value for an <input type="date">, or "" when it cannot be parsed.
func InputDate(value string) string {
	if t, ok := parseDate(value); ok {
		return t.Format(InputLayout)
	}
	return ""
}

// TruncateChars shortens s to at most n runes, appending "..." when cut.
func TruncateChars(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "..."
}

// TruncateWords keeps the first n words of s, appending "..." when cut.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if n <= 0 || len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ") + "..."
}
