package handlers

import (
	"testing"

	"github.com/example/essence/internal/models"
)

func TestFindSeasonVote(t *testing.T) {
	votes := []models.FragranceSeason{
		{UserID: 7, FragranceID: 3, Season: models.SeasonWinter},
		{UserID: 7, FragranceID: 3, Season: models.SeasonSummer},
	}

	if got := findSeasonVote(nil, models.SeasonWinter); got != nil {
		t.Fatalf("expected nil for empty vote set, got %+v", got)
	}

	match := findSeasonVote(votes, models.SeasonSummer)
	if match == nil {
		t.Fatal("expected a match for an existing season vote")
	}
	if match.Season != models.SeasonSummer {
		t.Errorf("expected summer vote, got %s", match.Season)
	}
	if match != &votes[1] {
		t.Error("expected pointer into the original slice")
	}

	// A season the user has not voted on toggles an insert, not a delete.
	if got := findSeasonVote(votes, models.SeasonSpring); got != nil {
		t.Errorf("expected nil for an unvoted season, got %+v", got)
	}
}
