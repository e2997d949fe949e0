package canon

import (
	"regexp"
	"testing"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-03-14", "2026-03-14"},
		{" 2026-03-14 ", "2026-03-14"},
		{"2026-03-14T18:30:00Z", "2026-03-14"},
		{"2026-03-14T23:59:59", "2026-03-14"},
		{"2026/03/14", "2026-03-14"},
		{"March 14, 2026", "2026-03-14"},
		{"Mar 1, 2026", "2026-03-01"},
		{"14 March 2026", "2026-03-14"},
		{"02 Jan 2027", "2027-01-02"},
	}
	for _, c := range cases {
		got, err := NormalizeDate(c.in)
		require.NoError(t, err, "NormalizeDate(%q)", c.in)
		assert.Equal(t, c.want, got)
		assert.Regexp(t, isoDate, got)
	}
}

func TestNormalizeDateInvalid(t *testing.T) {
	for _, in := range []string{"not a date", "", "   ", "14-03", "2026-13-99x"} {
		_, err := NormalizeDate(in)
		assert.ErrorIs(t, err, models.ErrInvalidDate, "input %q", in)
	}
}
