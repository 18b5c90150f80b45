package handlers

import (
	"math"
	"testing"
)

func TestBuildBreakdownZeroVotes(t *testing.T) {
	breakdown := buildBreakdown(genderCategories(), nil)

	if breakdown.Total != 0 {
		t.Fatalf("expected total 0, got %d", breakdown.Total)
	}
	if len(breakdown.Counts) != 5 {
		t.Fatalf("expected all 5 gender categories, got %d", len(breakdown.Counts))
	}
	for category, count := range breakdown.Counts {
		if count != 0 {
			t.Errorf("category %q: expected 0 votes, got %d", category, count)
		}
	}
	if breakdown.Percentages != nil {
		t.Errorf("expected nil percentages with no votes, got %v", breakdown.Percentages)
	}
}

func TestBuildBreakdownCountsAndPercentages(t *testing.T) {
	rows := []categoryCount{
		{Category: "male", Count: 3},
		{Category: "unisex", Count: 1},
	}

	breakdown := buildBreakdown(genderCategories(), rows)

	if breakdown.Total != 4 {
		t.Fatalf("expected total 4, got %d", breakdown.Total)
	}
	if got := breakdown.Counts["male"]; got != 3 {
		t.Errorf("male count: expected 3, got %d", got)
	}
	if got := breakdown.Counts["female"]; got != 0 {
		t.Errorf("female count: expected explicit 0, got %d", got)
	}
	if got := breakdown.Percentages["male"]; got != 75 {
		t.Errorf("male percentage: expected 75, got %v", got)
	}
	if got := breakdown.Percentages["unisex"]; got != 25 {
		t.Errorf("unisex percentage: expected 25, got %v", got)
	}
	if got := breakdown.Percentages["mostly male"]; got != 0 {
		t.Errorf("mostly male percentage: expected 0, got %v", got)
	}
}

func TestBuildBreakdownPercentagesSumTo100(t *testing.T) {
	cases := [][]categoryCount{
		{{"winter", 1}, {"spring", 1}, {"summer", 1}},
		{{"winter", 7}, {"fall", 3}},
		{{"winter", 1}, {"spring", 1}, {"summer", 1}, {"fall", 1}},
		{{"summer", 13}},
	}

	for _, rows := range cases {
		breakdown := buildBreakdown(seasonCategories(), rows)
		var sum float64
		for _, pct := range breakdown.Percentages {
			sum += pct
		}
		if math.Abs(sum-100) > 0.05 {
			t.Errorf("rows %v: percentages sum to %v, want ~100", rows, sum)
		}
	}
}

func TestBuildBreakdownRounding(t *testing.T) {
	rows := []categoryCount{
		{Category: "winter", Count: 1},
		{Category: "spring", Count: 1},
		{Category: "summer", Count: 1},
	}

	breakdown := buildBreakdown(seasonCategories(), rows)

	if got := breakdown.Percentages["winter"]; got != 33.33 {
		t.Errorf("expected 33.33 after rounding, got %v", got)
	}
}

func TestBuildBreakdownIgnoresUnknownCategories(t *testing.T) {
	rows := []categoryCount{
		{Category: "winter", Count: 2},
		{Category: "monsoon", Count: 5},
	}

	breakdown := buildBreakdown(seasonCategories(), rows)

	if breakdown.Total != 2 {
		t.Fatalf("expected unknown category to be ignored, total %d", breakdown.Total)
	}
	if _, ok := breakdown.Counts["monsoon"]; ok {
		t.Error("unknown category leaked into counts")
	}
}
