package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/essence/internal/models"
	"github.com/example/essence/internal/utils"
)

// FragranceHandler manages the fragrance catalog.
type FragranceHandler struct {
	db *gorm.DB
}

// NewFragranceHandler constructs FragranceHandler.
func NewFragranceHandler(db *gorm.DB) *FragranceHandler {
	return &FragranceHandler{db: db}
}

// ListFragrances returns a page of fragrances with optional filters.
// company_name matches case-insensitive substrings, fragrance_type is
// an exact enum match, and results are ordered by price.
func (h *FragranceHandler) ListFragrances(c *fiber.Ctx) error {
	pg, err := utils.ParsePagination(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	query := h.db.Model(&models.Fragrance{})

	if name := strings.TrimSpace(c.Query("company_name")); name != "" {
		query = query.Joins("JOIN companies ON companies.id = fragrances.company_id").
			Where("companies.name ILIKE ?", "%"+name+"%")
	}

	if v := c.Query("fragrance_type"); v != "" {
		fragranceType := models.FragranceType(v)
		if !fragranceType.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid fragrance_type")
		}
		query = query.Where("fragrance_type = ?", fragranceType)
	}

	minPrice, hasMin, err := parsePriceBound(c.Query("min_price"), "min_price")
	if err != nil {
		return err
	}
	maxPrice, hasMax, err := parsePriceBound(c.Query("max_price"), "max_price")
	if err != nil {
		return err
	}
	if hasMin && hasMax && minPrice > maxPrice {
		return fiber.NewError(fiber.StatusBadRequest, "min_price must not exceed max_price")
	}
	if hasMin {
		query = query.Where("price >= ?", minPrice)
	}
	if hasMax {
		query = query.Where("price <= ?", maxPrice)
	}

	order := "price asc"
	switch c.Query("sort", "price_asc") {
	case "price_asc":
	case "price_desc":
		order = "price desc"
	default:
		return fiber.NewError(fiber.StatusBadRequest, "sort must be price_asc or price_desc")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	fragrances := []models.Fragrance{}
	if err := query.Preload("Company").
		Limit(pg.Size).Offset(pg.Offset).
		Order(order).
		Find(&fragrances).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fragrances,
		"pagination": fiber.Map{
			"current_page": pg.Page,
			"page_size":    pg.Size,
			"total_items":  total,
		},
	})
}

func parsePriceBound(value, name string) (int, bool, error) {
	if value == "" {
		return 0, false, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s must be an integer", name))
	}
	if parsed < 0 {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s must not be negative", name))
	}
	return parsed, true, nil
}

// GetFragrance loads a fragrance with its notes, reviews and the
// gender/season vote breakdowns. The reads share one transaction so
// the counts are consistent with the entity.
func (h *FragranceHandler) GetFragrance(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var fragrance models.Fragrance
	var genderVotes, seasonVotes VoteBreakdown

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Company").
			Preload("Notes.Note.Group").
			Preload("Reviews.User").
			First(&fragrance, "id = ?", id).Error; err != nil {
			if isNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "fragrance not found")
			}
			return err
		}

		var genderRows []categoryCount
		if err := tx.Model(&models.FragranceGender{}).
			Select("gender AS category, COUNT(*) AS count").
			Where("fragrance_id = ?", id).
			Group("gender").
			Scan(&genderRows).Error; err != nil {
			return err
		}

		var seasonRows []categoryCount
		if err := tx.Model(&models.FragranceSeason{}).
			Select("season AS category, COUNT(*) AS count").
			Where("fragrance_id = ?", id).
			Group("season").
			Scan(&seasonRows).Error; err != nil {
			return err
		}

		genderVotes = buildBreakdown(genderCategories(), genderRows)
		seasonVotes = buildBreakdown(seasonCategories(), seasonRows)
		return nil
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"fragrance":    fragrance,
			"gender_votes": genderVotes,
			"season_votes": seasonVotes,
		},
	})
}

// validFragranceName trims the name and checks its length in runes.
func validFragranceName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if count := utf8.RuneCountInString(trimmed); count < 3 || count > 150 {
		return "", fiber.NewError(fiber.StatusBadRequest, "name must be between 3 and 150 characters")
	}
	return trimmed, nil
}

type createFragranceRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	CompanyID   int64                `json:"company_id"`
	Price       *int                 `json:"price"`
	Type        models.FragranceType `json:"fragrance_type"`
	ML          int                  `json:"ml"`
	Picture     string               `json:"picture"`
	Notes       []notePair           `json:"notes"`
}

// CreateFragrance persists a new fragrance together with its note
// associations. The whole write is one transaction; a failed note
// insert rolls back the fragrance as well.
func (h *FragranceHandler) CreateFragrance(c *fiber.Ctx) error {
	var req createFragranceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	name, err := validFragranceName(req.Name)
	if err != nil {
		return err
	}
	if req.CompanyID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "company_id is required")
	}
	if !req.Type.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid fragrance_type")
	}
	if req.Price == nil || *req.Price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "price is required and must not be negative")
	}
	for _, pair := range req.Notes {
		if !pair.Position.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "note_type must be top, middle or base")
		}
	}

	fragrance := models.Fragrance{
		Name:        name,
		Description: req.Description,
		CompanyID:   req.CompanyID,
		Price:       *req.Price,
		Type:        req.Type,
		ML:          req.ML,
		Picture:     req.Picture,
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.Select("id").First(&company, "id = ?", req.CompanyID).Error; err != nil {
			if isNotFound(err) {
				return fiber.NewError(fiber.StatusBadRequest, "company does not exist")
			}
			return err
		}

		if err := tx.Create(&fragrance).Error; err != nil {
			if isDuplicate(err) {
				return fiber.NewError(fiber.StatusConflict, "fragrance name already exists")
			}
			return err
		}

		return insertNoteAssociations(tx, fragrance.ID, req.Notes)
	}); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fragrance})
}

// insertNoteAssociations validates each referenced note and creates the
// join rows. Runs inside the caller's transaction.
func insertNoteAssociations(tx *gorm.DB, fragranceID int64, pairs []notePair) error {
	for _, pair := range pairs {
		var note models.Note
		if err := tx.Select("id").First(&note, "id = ?", pair.NoteID).Error; err != nil {
			if isNotFound(err) {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("note %d does not exist", pair.NoteID))
			}
			return err
		}

		assoc := models.FragranceNote{
			FragranceID: fragranceID,
			NoteID:      pair.NoteID,
			Position:    pair.Position,
		}
		if err := tx.Create(&assoc).Error; err != nil {
			if isDuplicate(err) {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("note %d is already attached", pair.NoteID))
			}
			return err
		}
	}
	return nil
}

type updateFragranceRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	CompanyID   *int64                `json:"company_id"`
	Price       *int                  `json:"price"`
	Type        *models.FragranceType `json:"fragrance_type"`
	ML          *int                  `json:"ml"`
	Picture     *string               `json:"picture"`
	Notes       *[]notePair           `json:"notes"`
}

// UpdateFragrance applies a partial update. Only supplied fields
// change; a supplied note list is reconciled against the existing
// associations and the whole change set is atomic.
func (h *FragranceHandler) UpdateFragrance(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req updateFragranceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name, err := validFragranceName(*req.Name)
		if err != nil {
			return err
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price must not be negative")
		}
		updates["price"] = *req.Price
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid fragrance_type")
		}
		updates["fragrance_type"] = *req.Type
	}
	if req.ML != nil {
		updates["ml"] = *req.ML
	}
	if req.Picture != nil {
		updates["picture"] = *req.Picture
	}
	if req.CompanyID != nil {
		updates["company_id"] = *req.CompanyID
	}
	if req.Notes != nil {
		for _, pair := range *req.Notes {
			if !pair.Position.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "note_type must be top, middle or base")
			}
		}
	}

	var fragrance models.Fragrance
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Notes").First(&fragrance, "id = ?", id).Error; err != nil {
			if isNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "fragrance not found")
			}
			return err
		}

		if req.CompanyID != nil {
			var company models.Company
			if err := tx.Select("id").First(&company, "id = ?", *req.CompanyID).Error; err != nil {
				if isNotFound(err) {
					return fiber.NewError(fiber.StatusBadRequest, "company does not exist")
				}
				return err
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&fragrance).Updates(updates).Error; err != nil {
				if isDuplicate(err) {
					return fiber.NewError(fiber.StatusConflict, "fragrance name already exists")
				}
				return err
			}
		}

		if req.Notes != nil {
			diff := reconcileNotes(fragrance.Notes, *req.Notes)

			if len(diff.toDelete) > 0 {
				if err := tx.Delete(&models.FragranceNote{}, "id IN ?", diff.toDelete).Error; err != nil {
					return err
				}
			}
			for _, assoc := range diff.toUpdate {
				if err := tx.Model(&models.FragranceNote{}).
					Where("id = ?", assoc.ID).
					Update("note_type", assoc.Position).Error; err != nil {
					return err
				}
			}
			if err := insertNoteAssociations(tx, fragrance.ID, diff.toInsert); err != nil {
				return err
			}
		}

		return tx.Preload("Company").Preload("Notes.Note").First(&fragrance, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fragrance})
}

// DeleteFragrance removes a fragrance and its dependent rows.
func (h *FragranceHandler) DeleteFragrance(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		var fragrance models.Fragrance
		if err := orNotFound(tx.Select("id").First(&fragrance, "id = ?", id).Error, "fragrance not found"); err != nil {
			return err
		}

		dependents := []interface{}{
			&models.FragranceNote{},
			&models.Review{},
			&models.Wishlist{},
			&models.FragranceGender{},
			&models.FragranceSeason{},
			&models.FragranceSillage{},
			&models.FragranceLongevity{},
			&models.FragrancePriceValue{},
		}
		for _, dependent := range dependents {
			if err := tx.Where("fragrance_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("fragrance_id = ? OR similar_id = ?", id, id).
			Delete(&models.FragranceSimilar{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Fragrance{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
