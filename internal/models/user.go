package models

// Role distinguishes administrators from regular users.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an authenticated account.
type User struct {
	BaseModel
	Username     string `gorm:"size:50;index" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex" json:"email"`
	Role         Role   `gorm:"size:20;default:user" json:"role"`
	PasswordHash string `json:"-"`

	Reviews  []Review   `json:"reviews,omitempty"`
	Wishlist []Wishlist `json:"wishlist,omitempty"`
}
