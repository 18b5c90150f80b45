package models

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// Review is a user's opinion on a fragrance.
type Review struct {
	BaseModel
	UserID      int64   `gorm:"index" json:"user_id"`
	FragranceID int64   `gorm:"index" json:"fragrance_id"`
	Content     string  `gorm:"type:text" json:"content"`
	Rating      float64 `json:"rating"`

	User *User `json:"user,omitempty"`
}

const maxReviewLength = 2000

var (
	ErrEmptyContent   = errors.New("review content cannot be empty")
	ErrContentTooLong = errors.New("review content must not exceed 2000 characters")
	ErrInvalidRating  = errors.New("rating must be a multiple of 0.5 between 1 and 10")
)

// ValidReviewContent trims the content and rejects empty or oversized values.
func ValidReviewContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(trimmed) > maxReviewLength {
		return "", ErrContentTooLong
	}
	return trimmed, nil
}

// ValidRating reports whether the rating is a half-point value in [1, 10].
func ValidRating(rating float64) bool {
	if rating < 1 || rating > 10 {
		return false
	}
	doubled := rating * 2
	return doubled == math.Trunc(doubled)
}
