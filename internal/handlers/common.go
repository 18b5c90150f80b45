package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// parseID reads a positive integer id from a route parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// isDuplicate reports whether the error is a uniqueness violation.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// orNotFound converts a record-not-found error into a 404 with the
// given message and passes every other error through unchanged.
func orNotFound(err error, message string) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return fiber.NewError(fiber.StatusNotFound, message)
	}
	return err
}
