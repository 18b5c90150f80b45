package middleware

import (
	"testing"

	"github.com/example/essence/internal/models"
)

func TestRoleAllowed(t *testing.T) {
	cases := []struct {
		name    string
		role    models.Role
		allowed []models.Role
		want    bool
	}{
		{"admin in admin-only", models.RoleAdmin, []models.Role{models.RoleAdmin}, true},
		{"user in admin-only", models.RoleUser, []models.Role{models.RoleAdmin}, false},
		{"user in user-or-admin", models.RoleUser, []models.Role{models.RoleUser, models.RoleAdmin}, true},
		{"admin in user-or-admin", models.RoleAdmin, []models.Role{models.RoleUser, models.RoleAdmin}, true},
		{"empty allowed set", models.RoleAdmin, nil, false},
		{"unknown role", models.Role("guest"), []models.Role{models.RoleUser, models.RoleAdmin}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoleAllowed(tc.role, tc.allowed...); got != tc.want {
				t.Errorf("RoleAllowed(%q, %v) = %v, want %v", tc.role, tc.allowed, got, tc.want)
			}
		})
	}
}

func TestTokensMatch(t *testing.T) {
	if !TokensMatch("abc123", "abc123") {
		t.Error("identical tokens should match")
	}
	if TokensMatch("abc123", "abc124") {
		t.Error("different tokens should not match")
	}
	if TokensMatch("", "") {
		t.Error("empty tokens must never match")
	}
	if TokensMatch("abc123", "") {
		t.Error("missing header must not match")
	}
}
