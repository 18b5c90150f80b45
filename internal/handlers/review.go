package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/essence/internal/middleware"
	"github.com/example/essence/internal/models"
	"github.com/example/essence/internal/services"
)

// ReviewHandler manages review CRUD, scoped to the owning user.
type ReviewHandler struct {
	db     *gorm.DB
	events *services.EventPublisher
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(db *gorm.DB, events *services.EventPublisher) *ReviewHandler {
	return &ReviewHandler{db: db, events: events}
}

type createReviewRequest struct {
	FragranceID int64   `json:"fragrance_id"`
	Content     string  `json:"content"`
	Rating      float64 `json:"rating"`
}

// CreateReview stores a review for the authenticated user.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	content, err := models.ValidReviewContent(req.Content)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !models.ValidRating(req.Rating) {
		return fiber.NewError(fiber.StatusBadRequest, models.ErrInvalidRating.Error())
	}

	var fragrance models.Fragrance
	if err := h.db.Select("id").First(&fragrance, "id = ?", req.FragranceID).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusBadRequest, "fragrance does not exist")
		}
		return err
	}

	review := models.Review{
		UserID:      user.ID,
		FragranceID: req.FragranceID,
		Content:     content,
		Rating:      req.Rating,
	}
	if err := h.db.Create(&review).Error; err != nil {
		return err
	}

	// Fire and forget; a broker outage must not fail the request.
	go func(r models.Review) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.events.PublishReviewCreated(ctx, services.ReviewCreatedEvent{
			ReviewID:    r.ID,
			FragranceID: r.FragranceID,
			UserID:      r.UserID,
			Rating:      r.Rating,
			CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}(review)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": review})
}

type updateReviewRequest struct {
	Content *string  `json:"content"`
	Rating  *float64 `json:"rating"`
}

// UpdateReview edits a review owned by the caller. A review that exists
// but belongs to someone else is reported as not found.
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		content, err := models.ValidReviewContent(*req.Content)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		updates["content"] = content
	}
	if req.Rating != nil {
		if !models.ValidRating(*req.Rating) {
			return fiber.NewError(fiber.StatusBadRequest, models.ErrInvalidRating.Error())
		}
		updates["rating"] = *req.Rating
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	var review models.Review
	if err := h.db.Where("id = ? AND user_id = ?", id, user.ID).First(&review).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "review not found")
		}
		return err
	}

	if err := h.db.Model(&review).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": review})
}

// DeleteReview removes a review owned by the caller.
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	result := h.db.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "review not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListMyReviews returns the caller's reviews, newest first.
func (h *ReviewHandler) ListMyReviews(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	reviews := []models.Review{}
	if err := h.db.Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": reviews})
}
