package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/essence/internal/models"
	"github.com/example/essence/internal/utils"
)

// CompanyHandler manages fragrance houses.
type CompanyHandler struct {
	db *gorm.DB
}

// NewCompanyHandler constructs CompanyHandler.
func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{db: db}
}

// ListCompanies returns paginated companies.
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	pg, err := utils.ParsePagination(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := h.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return err
	}

	companies := []models.Company{}
	if err := h.db.Limit(pg.Size).Offset(pg.Offset).Order("name asc").
		Find(&companies).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    companies,
		"pagination": fiber.Map{
			"current_page": pg.Page,
			"page_size":    pg.Size,
			"total_items":  total,
		},
	})
}

// GetCompany returns a single company with its fragrances.
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var company models.Company
	if err := h.db.Preload("Fragrances").First(&company, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "company not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": company})
}

type companyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCompany persists a new company.
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	company := models.Company{Name: name, Description: req.Description}
	if err := h.db.Create(&company).Error; err != nil {
		if isDuplicate(err) {
			return fiber.NewError(fiber.StatusConflict, "company name already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": company})
}

// UpdateCompany updates an existing company.
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var company models.Company
	if err := h.db.First(&company, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "company not found")
		}
		return err
	}

	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.db.Model(&company).Updates(updates).Error; err != nil {
		if isDuplicate(err) {
			return fiber.NewError(fiber.StatusConflict, "company name already exists")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": company})
}

// DeleteCompany removes a company without fragrances.
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var company models.Company
	if err := h.db.First(&company, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "company not found")
		}
		return err
	}

	var owned int64
	if err := h.db.Model(&models.Fragrance{}).Where("company_id = ?", id).Count(&owned).Error; err != nil {
		return err
	}
	if owned > 0 {
		return fiber.NewError(fiber.StatusConflict, "company still owns fragrances")
	}

	if err := h.db.Delete(&company).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
