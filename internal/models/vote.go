package models

// Gender is the perceived gender audience of a fragrance.
type Gender string

const (
	GenderMale         Gender = "male"
	GenderMostlyMale   Gender = "mostly male"
	GenderFemale       Gender = "female"
	GenderMostlyFemale Gender = "mostly female"
	GenderUnisex       Gender = "unisex"
)

// Genders lists every category in presentation order. Breakdown
// responses always include all of them, voted or not.
var Genders = []Gender{GenderMale, GenderMostlyMale, GenderFemale, GenderMostlyFemale, GenderUnisex}

func (g Gender) Valid() bool {
	for _, known := range Genders {
		if g == known {
			return true
		}
	}
	return false
}

// Season is a season-fit vote value.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

// Seasons lists every category in presentation order.
var Seasons = []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}

func (s Season) Valid() bool {
	for _, known := range Seasons {
		if s == known {
			return true
		}
	}
	return false
}

// Sillage is the perceived projection strength.
type Sillage string

const (
	SillageIntimate Sillage = "intimate"
	SillageModerate Sillage = "moderate"
	SillageStrong   Sillage = "strong"
	SillageEnormous Sillage = "enormous"
)

func (s Sillage) Valid() bool {
	switch s {
	case SillageIntimate, SillageModerate, SillageStrong, SillageEnormous:
		return true
	}
	return false
}

// Longevity is the perceived lasting power.
type Longevity string

const (
	LongevityVeryWeak    Longevity = "very weak"
	LongevityWeak        Longevity = "weak"
	LongevityModerate    Longevity = "moderate"
	LongevityLongLasting Longevity = "long lasting"
	LongevityEternal     Longevity = "eternal"
)

func (l Longevity) Valid() bool {
	switch l {
	case LongevityVeryWeak, LongevityWeak, LongevityModerate, LongevityLongLasting, LongevityEternal:
		return true
	}
	return false
}

// PriceValue is the perceived value for money.
type PriceValue string

const (
	PriceWayOverpriced PriceValue = "way overpriced"
	PriceOverpriced    PriceValue = "overpriced"
	PriceOK            PriceValue = "ok"
	PriceGoodValue     PriceValue = "good value"
	PriceGreatValue    PriceValue = "great value"
)

func (p PriceValue) Valid() bool {
	switch p {
	case PriceWayOverpriced, PriceOverpriced, PriceOK, PriceGoodValue, PriceGreatValue:
		return true
	}
	return false
}

// FragranceGender is a single-valued gender vote per (user, fragrance).
// Casting again overwrites the previous value.
type FragranceGender struct {
	BaseModel
	UserID      int64  `gorm:"index;uniqueIndex:uniq_user_fragrance_gender" json:"user_id"`
	FragranceID int64  `gorm:"index;uniqueIndex:uniq_user_fragrance_gender" json:"fragrance_id"`
	Gender      Gender `gorm:"size:20;not null" json:"gender"`
}

// FragranceSeason is a toggleable season vote. A user may hold several
// season rows for the same fragrance, one per season.
type FragranceSeason struct {
	BaseModel
	UserID      int64  `gorm:"index" json:"user_id"`
	FragranceID int64  `gorm:"index" json:"fragrance_id"`
	Season      Season `gorm:"size:10;not null" json:"season"`
}

// FragranceSillage is a single-valued sillage vote per (user, fragrance).
type FragranceSillage struct {
	BaseModel
	UserID      int64   `gorm:"index;uniqueIndex:uniq_user_fragrance_sillage" json:"user_id"`
	FragranceID int64   `gorm:"index;uniqueIndex:uniq_user_fragrance_sillage" json:"fragrance_id"`
	Sillage     Sillage `gorm:"size:20;not null" json:"sillage"`
}

// FragranceLongevity is a single-valued longevity vote per (user, fragrance).
type FragranceLongevity struct {
	BaseModel
	UserID      int64     `gorm:"index;uniqueIndex:uniq_user_fragrance_longevity" json:"user_id"`
	FragranceID int64     `gorm:"index;uniqueIndex:uniq_user_fragrance_longevity" json:"fragrance_id"`
	Longevity   Longevity `gorm:"size:20;not null" json:"longevity"`
}

// FragrancePriceValue is a single-valued price vote per (user, fragrance).
type FragrancePriceValue struct {
	BaseModel
	UserID      int64      `gorm:"index;uniqueIndex:uniq_user_fragrance_price_value" json:"user_id"`
	FragranceID int64      `gorm:"index;uniqueIndex:uniq_user_fragrance_price_value" json:"fragrance_id"`
	PriceValue  PriceValue `gorm:"size:20;not null" json:"price_value"`
}
