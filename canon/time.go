package canon

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gatherly/models"
)

// hour, optional :minute (exactly two digits), optional AM/PM with an
// optional single space before it.
var timePattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))? ?([AaPp][Mm])?$`)

// NormalizeTime parses a flexible 12h/24h time string and returns it as
// zero-padded 24-hour HH:mm.
func NormalizeTime(input string) (string, error) {
	s := strings.TrimSpace(input)
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidTime, input)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	if meridiem := strings.ToLower(m[3]); meridiem != "" {
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("%w: hour %d with %s", models.ErrTimeOutOfRange, hour, strings.ToUpper(meridiem))
		}
		switch meridiem {
		case "am":
			if hour == 12 {
				hour = 0
			}
		case "pm":
			if hour != 12 {
				hour += 12
			}
		}
	}

	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w: %q", models.ErrTimeOutOfRange, input)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
