package models

// FragranceType is the concentration class of a fragrance.
type FragranceType string

const (
	TypeEDP    FragranceType = "Eau de Parfum"
	TypeElixir FragranceType = "Elixir"
	TypeParfum FragranceType = "Parfum"
	TypeEDT    FragranceType = "Eau de Toilette"
)

// FragranceTypes lists every valid concentration class.
var FragranceTypes = []FragranceType{TypeEDP, TypeElixir, TypeParfum, TypeEDT}

// Valid reports whether the type is one of the known values.
func (t FragranceType) Valid() bool {
	for _, known := range FragranceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NotePosition is the olfactory position of a note within a fragrance.
type NotePosition string

const (
	NoteTop    NotePosition = "top"
	NoteMiddle NotePosition = "middle"
	NoteBase   NotePosition = "base"
)

// Valid reports whether the position is top, middle or base.
func (p NotePosition) Valid() bool {
	return p == NoteTop || p == NoteMiddle || p == NoteBase
}

// Fragrance is the central catalog entity.
type Fragrance struct {
	BaseModel
	Name        string        `gorm:"size:150;uniqueIndex" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	CompanyID   int64         `gorm:"index;not null" json:"company_id"`
	Company     *Company      `json:"company,omitempty"`
	Price       int           `json:"price"`
	Type        FragranceType `gorm:"size:30;column:fragrance_type" json:"fragrance_type"`
	ML          int           `gorm:"column:ml" json:"ml"`
	Picture     string        `json:"picture"`

	Notes   []FragranceNote `json:"notes,omitempty"`
	Reviews []Review        `json:"reviews,omitempty"`
}

// Company owns fragrances.
type Company struct {
	BaseModel
	Name        string `gorm:"size:150;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Fragrances []Fragrance `json:"fragrances,omitempty"`
}

// NoteGroup categorizes notes (citrus, woody, ...).
type NoteGroup struct {
	BaseModel
	Name        string `gorm:"size:150" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Notes []Note `gorm:"foreignKey:GroupID" json:"notes,omitempty"`
}

// Note is a single scent component.
type Note struct {
	BaseModel
	Name        string     `gorm:"size:150;uniqueIndex" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	GroupID     int64      `gorm:"index" json:"group_id"`
	Group       *NoteGroup `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

// FragranceNote links a fragrance to a note at a given position.
// A note may appear at most once per fragrance.
type FragranceNote struct {
	BaseModel
	FragranceID int64        `gorm:"index;uniqueIndex:uniq_fragrance_note" json:"fragrance_id"`
	NoteID      int64        `gorm:"index;uniqueIndex:uniq_fragrance_note" json:"note_id"`
	Position    NotePosition `gorm:"size:10;column:note_type" json:"note_type"`
	Note        *Note        `json:"note,omitempty"`
}

// FragranceSimilar links a fragrance to another one perceived as similar.
// Self links are rejected by a check constraint and a pair is unique.
type FragranceSimilar struct {
	BaseModel
	UserID      int64 `gorm:"index" json:"user_id"`
	FragranceID int64 `gorm:"index;uniqueIndex:uniq_similar_pair" json:"fragrance_id"`
	SimilarID   int64 `gorm:"index;uniqueIndex:uniq_similar_pair" json:"similar_id"`
}
