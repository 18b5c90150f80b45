package models

import "testing"

func TestFragranceTypeValid(t *testing.T) {
	for _, known := range FragranceTypes {
		if !known.Valid() {
			t.Errorf("%q should be valid", known)
		}
	}
	for _, bad := range []FragranceType{"", "edp", "Cologne"} {
		if bad.Valid() {
			t.Errorf("%q should be invalid", bad)
		}
	}
}

func TestNotePositionValid(t *testing.T) {
	for _, known := range []NotePosition{NoteTop, NoteMiddle, NoteBase} {
		if !known.Valid() {
			t.Errorf("%q should be valid", known)
		}
	}
	if NotePosition("heart").Valid() {
		t.Error("unknown position accepted")
	}
}

func TestGenderCategoriesClosed(t *testing.T) {
	if len(Genders) != 5 {
		t.Fatalf("gender breakdown expects 5 categories, got %d", len(Genders))
	}
	for _, g := range Genders {
		if !g.Valid() {
			t.Errorf("%q should be valid", g)
		}
	}
	if Gender("androgynous").Valid() {
		t.Error("unknown gender accepted")
	}
}

func TestSeasonCategoriesClosed(t *testing.T) {
	if len(Seasons) != 4 {
		t.Fatalf("season breakdown expects 4 categories, got %d", len(Seasons))
	}
	if Season("autumn").Valid() {
		t.Error("only \"fall\" is a valid autumn value")
	}
}

func TestPriceValueValid(t *testing.T) {
	known := []PriceValue{
		PriceWayOverpriced,
		PriceOverpriced,
		PriceOK,
		PriceGoodValue,
		PriceGreatValue,
	}
	for _, v := range known {
		if !v.Valid() {
			t.Errorf("%q should be valid", v)
		}
	}
	for _, bad := range []PriceValue{"", "cheap", "Great Value"} {
		if bad.Valid() {
			t.Errorf("%q should be invalid", bad)
		}
	}
}

func TestWishlistStatusValid(t *testing.T) {
	for _, known := range []WishlistStatus{StatusOwned, StatusWanted, StatusUsed} {
		if !known.Valid() {
			t.Errorf("%q should be valid", known)
		}
	}
	if WishlistStatus("tested").Valid() {
		t.Error("unknown status accepted")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Error("known roles rejected")
	}
	if Role("moderator").Valid() {
		t.Error("unknown role accepted")
	}
}
