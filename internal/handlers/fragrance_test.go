package handlers

import (
	"strings"
	"testing"
)

func TestValidFragranceName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"trimmed", "  Oud Royale  ", "Oud Royale", true},
		{"too short", "Oz", "", false},
		{"whitespace only", "   ", "", false},
		{"max runes", strings.Repeat("a", 150), strings.Repeat("a", 150), true},
		{"over max", strings.Repeat("a", 151), "", false},
		{"multi-byte at max", strings.Repeat("é", 150), strings.Repeat("é", 150), true},
		{"multi-byte over max", strings.Repeat("é", 151), "", false},
		{"short multi-byte", "Fée", "Fée", true},
	}

	for _, tc := range cases {
		got, err := validFragranceName(tc.input)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
