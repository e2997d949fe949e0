package canon

import (
	"regexp"
	"testing"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canonicalTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12:00 AM", "00:00"},
		{"12:00 PM", "12:00"},
		{"1:05pm", "13:05"},
		{"9:30", "09:30"},
		{"09:30", "09:30"},
		{"23:59", "23:59"},
		{"0:00", "00:00"},
		{"7", "07:00"},
		{"7 pm", "19:00"},
		{"11:45AM", "11:45"},
		{" 10:15 ", "10:15"},
	}
	for _, c := range cases {
		got, err := NormalizeTime(c.in)
		require.NoError(t, err, "NormalizeTime(%q)", c.in)
		assert.Equal(t, c.want, got)
		assert.Regexp(t, canonicalTime, got)
	}
}

func TestNormalizeTimeInvalid(t *testing.T) {
	for _, in := range []string{"abc", "", "12:0", "12:000", "noon", "1:05 xm", "10:30:00"} {
		_, err := NormalizeTime(in)
		assert.ErrorIs(t, err, models.ErrInvalidTime, "input %q", in)
	}
}

func TestNormalizeTimeOutOfRange(t *testing.T) {
	for _, in := range []string{"25:00", "24:00", "12:60", "13:00 PM", "0:30 AM"} {
		_, err := NormalizeTime(in)
		assert.ErrorIs(t, err, models.ErrTimeOutOfRange, "input %q", in)
	}
}
