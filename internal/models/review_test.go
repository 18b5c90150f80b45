package models

import (
	"strings"
	"testing"
)

func TestValidRating(t *testing.T) {
	cases := []struct {
		rating float64
		want   bool
	}{
		{1.0, true},
		{3.5, true},
		{10.0, true},
		{5.5, true},
		{3.3, false},
		{0.5, false},
		{10.5, false},
		{0, false},
		{-2, false},
		{7.25, false},
	}

	for _, tc := range cases {
		if got := ValidRating(tc.rating); got != tc.want {
			t.Errorf("ValidRating(%v) = %v, want %v", tc.rating, got, tc.want)
		}
	}
}

func TestValidReviewContent(t *testing.T) {
	if _, err := ValidReviewContent("   "); err != ErrEmptyContent {
		t.Errorf("whitespace-only content: got %v, want ErrEmptyContent", err)
	}

	if _, err := ValidReviewContent(strings.Repeat("a", 2001)); err != ErrContentTooLong {
		t.Errorf("oversized content: got %v, want ErrContentTooLong", err)
	}

	got, err := ValidReviewContent("  lovely iris opening  ")
	if err != nil {
		t.Fatalf("valid content rejected: %v", err)
	}
	if got != "lovely iris opening" {
		t.Errorf("content not trimmed: %q", got)
	}

	if _, err := ValidReviewContent(strings.Repeat("b", 2000)); err != nil {
		t.Errorf("exactly 2000 chars should pass, got %v", err)
	}

	// Length is measured in runes, so multi-byte text up to the limit passes.
	if _, err := ValidReviewContent(strings.Repeat("é", 2000)); err != nil {
		t.Errorf("2000 multi-byte runes should pass, got %v", err)
	}
	if _, err := ValidReviewContent(strings.Repeat("é", 2001)); err != ErrContentTooLong {
		t.Errorf("2001 runes: got %v, want ErrContentTooLong", err)
	}
}
