package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/essence/internal/middleware"
	"github.com/example/essence/internal/models"
)

// SimilarHandler manages user-suggested similar-fragrance links.
type SimilarHandler struct {
	db *gorm.DB
}

// NewSimilarHandler constructs SimilarHandler.
func NewSimilarHandler(db *gorm.DB) *SimilarHandler {
	return &SimilarHandler{db: db}
}

type similarRequest struct {
	SimilarID int64 `json:"similar_id"`
}

// AddSimilar links a fragrance to another one the caller finds
// similar. Self links are rejected and a pair is unique.
func (h *SimilarHandler) AddSimilar(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req similarRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.SimilarID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "similar_id is required")
	}
	if req.SimilarID == id {
		return fiber.NewError(fiber.StatusBadRequest, "a fragrance cannot be similar to itself")
	}

	var link models.FragranceSimilar
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, target := range []int64{id, req.SimilarID} {
			var fragrance models.Fragrance
			if err := tx.Select("id").First(&fragrance, "id = ?", target).Error; err != nil {
				if isNotFound(err) {
					return fiber.NewError(fiber.StatusNotFound, "fragrance not found")
				}
				return err
			}
		}

		link = models.FragranceSimilar{
			UserID:      user.ID,
			FragranceID: id,
			SimilarID:   req.SimilarID,
		}
		if err := tx.Create(&link).Error; err != nil {
			if isDuplicate(err) {
				return fiber.NewError(fiber.StatusConflict, "similar link already exists")
			}
			return err
		}
		return nil
	}); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": link})
}

// ListSimilar returns the fragrances linked as similar.
func (h *SimilarHandler) ListSimilar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var fragrance models.Fragrance
	if err := h.db.Select("id").First(&fragrance, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "fragrance not found")
		}
		return err
	}

	similar := []models.Fragrance{}
	if err := h.db.
		Joins("JOIN fragrance_similars ON fragrance_similars.similar_id = fragrances.id").
		Where("fragrance_similars.fragrance_id = ?", id).
		Preload("Company").
		Find(&similar).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": similar})
}

// RemoveSimilar deletes a similar link created by the caller.
func (h *SimilarHandler) RemoveSimilar(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	similarID, err := parseID(c, "similar_id")
	if err != nil {
		return err
	}

	result := h.db.Where("user_id = ? AND fragrance_id = ? AND similar_id = ?",
		user.ID, id, similarID).Delete(&models.FragranceSimilar{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "similar link not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
