package utils

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	ErrInvalidPage     = errors.New("page must be a positive integer")
	ErrInvalidPageSize = errors.New("page_size must be between 1 and 100")
)

// Pagination holds pagination parameters.
type Pagination struct {
	Page   int
	Size   int
	Offset int
}

// NewPagination builds pagination from raw query values. Empty values
// fall back to defaults; present but out-of-range values are an error.
func NewPagination(pageValue, sizeValue string) (Pagination, error) {
	page := 1
	if pageValue != "" {
		parsed, err := strconv.Atoi(pageValue)
		if err != nil || parsed < 1 {
			return Pagination{}, ErrInvalidPage
		}
		page = parsed
	}

	size := defaultPageSize
	if sizeValue != "" {
		parsed, err := strconv.Atoi(sizeValue)
		if err != nil || parsed < 1 || parsed > maxPageSize {
			return Pagination{}, ErrInvalidPageSize
		}
		size = parsed
	}

	return Pagination{
		Page:   page,
		Size:   size,
		Offset: (page - 1) * size,
	}, nil
}

// ParsePagination reads page and page_size from the request query.
func ParsePagination(c *fiber.Ctx) (Pagination, error) {
	return NewPagination(c.Query("page"), c.Query("page_size"))
}
