package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/essence/internal/services"
)

// UploadHandler stores fragrance pictures in object storage.
type UploadHandler struct {
	storage *services.StorageService
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(storage *services.StorageService) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadPicture accepts a multipart "image" field and returns the
// public URL to store on a fragrance.
func (h *UploadHandler) UploadPicture(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := h.storage.UploadPicture(
		c.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		if errors.Is(err, services.ErrStorageDisabled) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "uploads are not available")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "url": url})
}
