package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamnotfound/signup-backend/internal/config"
)

// AdminService verifies the shared admin secret. Admin status is process-wide
// configuration, not per-user: a successful check marks the caller's session
// as admin.
type AdminService struct {
	cfg *config.Config
}

func NewAdminService(cfg *config.Config) *AdminService {
	return &AdminService{cfg: cfg}
}

// VerifyPassword reports whether the submitted password matches the
// configured credential. A bcrypt hash takes precedence over the plaintext
// secret; with neither configured, admin access is disabled entirely.
func (s *AdminService) VerifyPassword(password string) bool {
	if password == "" {
		return false
	}
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	if s.cfg.AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.AdminPassword), []byte(password)) == 1
}
