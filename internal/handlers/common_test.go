package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestOrNotFound(t *testing.T) {
	if err := orNotFound(nil, "missing"); err != nil {
		t.Fatalf("expected nil for nil error, got %v", err)
	}

	err := orNotFound(gorm.ErrRecordNotFound, "fragrance not found")
	var fiberErr *fiber.Error
	if !errors.As(err, &fiberErr) {
		t.Fatalf("expected *fiber.Error, got %T", err)
	}
	if fiberErr.Code != fiber.StatusNotFound {
		t.Errorf("expected status 404, got %d", fiberErr.Code)
	}
	if fiberErr.Message != "fragrance not found" {
		t.Errorf("unexpected message %q", fiberErr.Message)
	}

	wrapped := fmt.Errorf("load fragrance: %w", gorm.ErrRecordNotFound)
	if err := orNotFound(wrapped, "missing"); !errors.As(err, &fiberErr) {
		t.Errorf("expected wrapped not-found to map to *fiber.Error, got %v", err)
	}

	other := errors.New("connection reset")
	if err := orNotFound(other, "missing"); err != other {
		t.Errorf("expected passthrough for unrelated error, got %v", err)
	}
}
