package handlers

import (
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/essence/internal/config"
	"github.com/example/essence/internal/middleware"
	"github.com/example/essence/internal/models"
	"github.com/example/essence/internal/services"
	"github.com/example/essence/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	sessions *services.SessionStore
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, sessions *services.SessionStore) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, sessions: sessions}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account with the default user role.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email address")
	}
	if len(req.Password) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "email already taken")
	} else if !isNotFound(err) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		Username:     username,
		Email:        req.Email,
		Role:         models.RoleUser,
		PasswordHash: passwordHash,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return fiber.NewError(fiber.StatusBadRequest, "email already taken")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and issues the session cookie. The token
// is also returned in the body for non-browser clients.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Username, string(user.Role), h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.TokenExpires),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"data": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if tokenString := c.Cookies(h.cfg.CookieName); tokenString != "" {
		if claims, err := utils.ParseToken(h.cfg.JWTSecret, tokenString); err == nil {
			expiry := time.Now().Add(h.cfg.TokenExpires)
			if claims.ExpiresAt != nil {
				expiry = claims.ExpiresAt.Time
			}
			if err := h.sessions.Revoke(c.Context(), claims.ID, expiry); err != nil {
				return err
			}
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", current.ID).Error; err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// CSRFToken issues a double-submit anti-forgery token. The cookie is
// intentionally readable so browser clients can echo it in the
// X-CSRF-Token header.
func (h *AuthHandler) CSRFToken(c *fiber.Ctx) error {
	token := uuid.NewString()

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CSRFCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.TokenExpires),
		HTTPOnly: false,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true, "csrf_token": token})
}
