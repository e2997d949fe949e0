package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Cool Talk!", "my-cool-talk"},
		{"Hello World", "hello-world"},
		{"  Trimmed   Title  ", "trimmed-title"},
		{"Go 1.24 Release Party", "go-124-release-party"},
		{"already-a-slug", "already-a-slug"},
		{"--- leading & trailing ---", "leading-trailing"},
		{"multiple   spaces\tand\ttabs", "multiple-spaces-and-tabs"},
		{"ALL CAPS", "all-caps"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "Slugify(%q)", c.in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"My Cool Talk!",
		"Go Meetup: Summer Edition (2026)",
		"  weird -- input __ here  ",
		"",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify not idempotent for %q", in)
	}
}
