package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/essence/internal/middleware"
	"github.com/example/essence/internal/models"
)

// VoteHandler manages crowd-sourced fragrance attribute votes.
type VoteHandler struct {
	db *gorm.DB
}

// NewVoteHandler constructs VoteHandler.
func NewVoteHandler(db *gorm.DB) *VoteHandler {
	return &VoteHandler{db: db}
}

// fragranceExists checks the target inside the current transaction.
func fragranceExists(tx *gorm.DB, id int64) error {
	var fragrance models.Fragrance
	if err := tx.Select("id").First(&fragrance, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusBadRequest, "fragrance does not exist")
		}
		return err
	}
	return nil
}

type genderVoteRequest struct {
	FragranceID int64         `json:"fragrance_id"`
	Gender      models.Gender `json:"gender"`
}

// VoteGender upserts the caller's gender vote: one row per
// (user, fragrance), last write wins. Repeating the same vote is a
// no-op.
func (h *VoteHandler) VoteGender(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req genderVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !req.Gender.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid gender value")
	}

	var vote models.FragranceGender
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND fragrance_id = ?", user.ID, req.FragranceID).
			First(&vote).Error
		switch {
		case err == nil:
			vote.Gender = req.Gender
			return tx.Save(&vote).Error
		case isNotFound(err):
			if err := fragranceExists(tx, req.FragranceID); err != nil {
				return err
			}
			vote = models.FragranceGender{
				UserID:      user.ID,
				FragranceID: req.FragranceID,
				Gender:      req.Gender,
			}
			return tx.Create(&vote).Error
		default:
			return err
		}
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": vote})
}

type seasonVoteRequest struct {
	FragranceID int64         `json:"fragrance_id"`
	Season      models.Season `json:"season"`
}

// findSeasonVote returns the caller's existing row for the voted
// season, or nil when the vote would insert. Other seasons never
// match, so each season toggles independently.
func findSeasonVote(votes []models.FragranceSeason, season models.Season) *models.FragranceSeason {
	for i := range votes {
		if votes[i].Season == season {
			return &votes[i]
		}
	}
	return nil
}

// VoteSeason toggles a season vote: an identical existing row is
// removed (retraction), otherwise a new row is inserted. Each season is
// independently toggleable, so a user may hold several season votes on
// the same fragrance.
func (h *VoteHandler) VoteSeason(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req seasonVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !req.Season.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid season value")
	}

	removed := false
	var vote models.FragranceSeason
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		var votes []models.FragranceSeason
		if err := tx.Where("user_id = ? AND fragrance_id = ?", user.ID, req.FragranceID).
			Find(&votes).Error; err != nil {
			return err
		}

		if match := findSeasonVote(votes, req.Season); match != nil {
			removed = true
			return tx.Delete(match).Error
		}

		if err := fragranceExists(tx, req.FragranceID); err != nil {
			return err
		}
		vote = models.FragranceSeason{
			UserID:      user.ID,
			FragranceID: req.FragranceID,
			Season:      req.Season,
		}
		return tx.Create(&vote).Error
	}); err != nil {
		return err
	}

	if removed {
		return c.JSON(fiber.Map{"success": true, "removed": true})
	}
	return c.JSON(fiber.Map{"success": true, "removed": false, "data": vote})
}

type sillageVoteRequest struct {
	FragranceID int64          `json:"fragrance_id"`
	Sillage     models.Sillage `json:"sillage"`
}

// VoteSillage upserts the caller's sillage vote.
func (h *VoteHandler) VoteSillage(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req sillageVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !req.Sillage.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid sillage value")
	}

	var vote models.FragranceSillage
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND fragrance_id = ?", user.ID, req.FragranceID).
			First(&vote).Error
		switch {
		case err == nil:
			vote.Sillage = req.Sillage
			return tx.Save(&vote).Error
		case isNotFound(err):
			if err := fragranceExists(tx, req.FragranceID); err != nil {
				return err
			}
			vote = models.FragranceSillage{
				UserID:      user.ID,
				FragranceID: req.FragranceID,
				Sillage:     req.Sillage,
			}
			return tx.Create(&vote).Error
		default:
			return err
		}
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": vote})
}

type longevityVoteRequest struct {
	FragranceID int64            `json:"fragrance_id"`
	Longevity   models.Longevity `json:"longevity"`
}

// VoteLongevity upserts the caller's longevity vote.
func (h *VoteHandler) VoteLongevity(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req longevityVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !req.Longevity.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid longevity value")
	}

	var vote models.FragranceLongevity
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND fragrance_id = ?", user.ID, req.FragranceID).
			First(&vote).Error
		switch {
		case err == nil:
			vote.Longevity = req.Longevity
			return tx.Save(&vote).Error
		case isNotFound(err):
			if err := fragranceExists(tx, req.FragranceID); err != nil {
				return err
			}
			vote = models.FragranceLongevity{
				UserID:      user.ID,
				FragranceID: req.FragranceID,
				Longevity:   req.Longevity,
			}
			return tx.Create(&vote).Error
		default:
			return err
		}
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": vote})
}

type priceValueVoteRequest struct {
	FragranceID int64             `json:"fragrance_id"`
	PriceValue  models.PriceValue `json:"price_value"`
}

// VotePriceValue upserts the caller's value-for-money vote.
func (h *VoteHandler) VotePriceValue(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req priceValueVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !req.PriceValue.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid price_value")
	}

	var vote models.FragrancePriceValue
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND fragrance_id = ?", user.ID, req.FragranceID).
			First(&vote).Error
		switch {
		case err == nil:
			vote.PriceValue = req.PriceValue
			return tx.Save(&vote).Error
		case isNotFound(err):
			if err := fragranceExists(tx, req.FragranceID); err != nil {
				return err
			}
			vote = models.FragrancePriceValue{
				UserID:      user.ID,
				FragranceID: req.FragranceID,
				PriceValue:  req.PriceValue,
			}
			return tx.Create(&vote).Error
		default:
			return err
		}
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": vote})
}
