package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/essence/internal/middleware"
	"github.com/example/essence/internal/models"
)

// WishlistHandler manages a user's wishlist.
type WishlistHandler struct {
	db *gorm.DB
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(db *gorm.DB) *WishlistHandler {
	return &WishlistHandler{db: db}
}

type wishlistRequest struct {
	FragranceID int64                 `json:"fragrance_id"`
	Status      models.WishlistStatus `json:"status"`
}

// AddToWishlist upserts a wishlist entry: re-adding an existing
// fragrance updates its status instead of duplicating the row.
func (h *WishlistHandler) AddToWishlist(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req wishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" {
		req.Status = models.StatusWanted
	}
	if !req.Status.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "status must be owned, wanted or used")
	}

	var entry models.Wishlist
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND fragrance_id = ?", user.ID, req.FragranceID).
			First(&entry).Error
		switch {
		case err == nil:
			entry.Status = req.Status
			return tx.Save(&entry).Error
		case isNotFound(err):
			if err := fragranceExists(tx, req.FragranceID); err != nil {
				return err
			}
			entry = models.Wishlist{
				UserID:      user.ID,
				FragranceID: req.FragranceID,
				Status:      req.Status,
			}
			return tx.Create(&entry).Error
		default:
			return err
		}
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": entry})
}

// ListWishlist returns the caller's wishlist entries with fragrances.
func (h *WishlistHandler) ListWishlist(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	entries := []models.Wishlist{}
	if err := h.db.Preload("Fragrance").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&entries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": entries})
}

// RemoveFromWishlist deletes the caller's entry for a fragrance.
func (h *WishlistHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	fragranceID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	result := h.db.Where("user_id = ? AND fragrance_id = ?", user.ID, fragranceID).
		Delete(&models.Wishlist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "wishlist entry not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
