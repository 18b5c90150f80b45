package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/essence/internal/models"
	"github.com/example/essence/internal/utils"
)

// NoteHandler manages scent notes and note groups.
type NoteHandler struct {
	db *gorm.DB
}

// NewNoteHandler constructs NoteHandler.
func NewNoteHandler(db *gorm.DB) *NoteHandler {
	return &NoteHandler{db: db}
}

// ListNoteGroups returns all note groups with their notes.
func (h *NoteHandler) ListNoteGroups(c *fiber.Ctx) error {
	groups := []models.NoteGroup{}
	if err := h.db.Preload("Notes").Order("name asc").Find(&groups).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": groups})
}

type noteGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateNoteGroup persists a new note group.
func (h *NoteHandler) CreateNoteGroup(c *fiber.Ctx) error {
	var req noteGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	group := models.NoteGroup{Name: name, Description: req.Description}
	if err := h.db.Create(&group).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": group})
}

// DeleteNoteGroup removes a note group without notes.
func (h *NoteHandler) DeleteNoteGroup(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var group models.NoteGroup
	if err := h.db.First(&group, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "note group not found")
		}
		return err
	}

	var attached int64
	if err := h.db.Model(&models.Note{}).Where("group_id = ?", id).Count(&attached).Error; err != nil {
		return err
	}
	if attached > 0 {
		return fiber.NewError(fiber.StatusConflict, "note group still has notes")
	}

	if err := h.db.Delete(&group).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListNotes returns paginated notes with their groups.
func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	pg, err := utils.ParsePagination(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := h.db.Model(&models.Note{}).Count(&total).Error; err != nil {
		return err
	}

	notes := []models.Note{}
	if err := h.db.Preload("Group").Limit(pg.Size).Offset(pg.Offset).
		Order("name asc").Find(&notes).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notes,
		"pagination": fiber.Map{
			"current_page": pg.Page,
			"page_size":    pg.Size,
			"total_items":  total,
		},
	})
}

type noteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GroupID     int64  `json:"group_id"`
}

// CreateNote persists a new note inside an existing group.
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	var group models.NoteGroup
	if err := h.db.Select("id").First(&group, "id = ?", req.GroupID).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusBadRequest, "note group does not exist")
		}
		return err
	}

	note := models.Note{Name: name, Description: req.Description, GroupID: req.GroupID}
	if err := h.db.Create(&note).Error; err != nil {
		if isDuplicate(err) {
			return fiber.NewError(fiber.StatusConflict, "note name already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": note})
}

// DeleteNote removes a note not attached to any fragrance.
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var note models.Note
	if err := h.db.First(&note, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "note not found")
		}
		return err
	}

	var attached int64
	if err := h.db.Model(&models.FragranceNote{}).Where("note_id = ?", id).Count(&attached).Error; err != nil {
		return err
	}
	if attached > 0 {
		return fiber.NewError(fiber.StatusConflict, "note is attached to fragrances")
	}

	if err := h.db.Delete(&note).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
