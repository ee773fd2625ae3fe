package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"My Résumé Site", "my-resume-site"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"C++ & Go!", "c-go"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER CASE", "upper-case"},
		{"100% Test Coverage", "100-test-coverage"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input: %q", tc.in)
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "resume", RemoveDiacritics("résumé"))
	assert.Equal(t, "Munchen", RemoveDiacritics("München"))
	assert.Equal(t, "plain", RemoveDiacritics("plain"))
}
