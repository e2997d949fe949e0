package canon

import (
	"fmt"
	"strings"
	"time"

	"gatherly/models"
)

// Accepted input layouts, ISO first. Everything is parsed in UTC and only
// the calendar date is kept, so the same input always yields the same day
// regardless of host timezone.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// NormalizeDate parses a date-like string and returns it as YYYY-MM-DD.
func NormalizeDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: empty date", models.ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", models.ErrInvalidDate, input)
}
