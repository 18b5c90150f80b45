package models

// WishlistStatus is the relation a user has to a fragrance.
type WishlistStatus string

const (
	StatusOwned  WishlistStatus = "owned"
	StatusWanted WishlistStatus = "wanted"
	StatusUsed   WishlistStatus = "used"
)

func (s WishlistStatus) Valid() bool {
	return s == StatusOwned || s == StatusWanted || s == StatusUsed
}

// Wishlist holds one row per (user, fragrance); re-adding updates the
// status instead of duplicating.
type Wishlist struct {
	BaseModel
	UserID      int64          `gorm:"index;uniqueIndex:uniq_user_fragrance" json:"user_id"`
	FragranceID int64          `gorm:"index;uniqueIndex:uniq_user_fragrance" json:"fragrance_id"`
	Status      WishlistStatus `gorm:"size:10;not null;default:wanted" json:"status"`

	Fragrance *Fragrance `json:"fragrance,omitempty"`
}

// TableName keeps the historical join-table name.
func (Wishlist) TableName() string {
	return "user_fragrances"
}
