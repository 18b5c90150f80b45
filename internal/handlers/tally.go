package handlers

import (
	"math"

	"github.com/example/essence/internal/models"
)

// categoryCount is one row of a grouped vote count query.
type categoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// VoteBreakdown reports vote counts and percentages per category.
// Every category of the closed set is present even with zero votes.
// Percentages is nil when no votes exist, so clients see null instead
// of a divide-by-zero artifact.
type VoteBreakdown struct {
	Total       int64              `json:"total"`
	Counts      map[string]int64   `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
}

// buildBreakdown tallies grouped counts against a closed category set.
// Rows whose category is not in the set are ignored.
func buildBreakdown(categories []string, rows []categoryCount) VoteBreakdown {
	counts := make(map[string]int64, len(categories))
	for _, category := range categories {
		counts[category] = 0
	}

	var total int64
	for _, row := range rows {
		if _, ok := counts[row.Category]; !ok {
			continue
		}
		counts[row.Category] = row.Count
		total += row.Count
	}

	breakdown := VoteBreakdown{Total: total, Counts: counts}
	if total == 0 {
		return breakdown
	}

	percentages := make(map[string]float64, len(categories))
	for _, category := range categories {
		pct := float64(counts[category]) / float64(total) * 100
		percentages[category] = math.Round(pct*100) / 100
	}
	breakdown.Percentages = percentages

	return breakdown
}

func genderCategories() []string {
	categories := make([]string, len(models.Genders))
	for i, g := range models.Genders {
		categories[i] = string(g)
	}
	return categories
}

func seasonCategories() []string {
	categories := make([]string, len(models.Seasons))
	for i, s := range models.Seasons {
		categories[i] = string(s)
	}
	return categories
}
