// Package session carries request identity into the workflows and the
// workflows' session mutations back out. Workflows never touch the fiber
// session directly: they receive an Identity snapshot and return an Update
// describing what the handler should apply.
package session

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/teamnotfound/signup-backend/internal/config"
)

const (
	keyUserID  = "userId"
	keyIsAdmin = "isAdmin"
)

// Identity is the caller as the workflows see it: the member id bound to the
// session (empty for anonymous visitors), the admin flag, and the device
// token claimed via the X-Device-ID header.
type Identity struct {
	UserID   string
	IsAdmin  bool
	DeviceID string
}

// Update describes session mutations for the handler to apply. The zero
// value applies nothing.
type Update struct {
	SetUserID   string
	ClearUserID bool
	SetAdmin    bool
}

// NewStore builds the fiber session store. Sessions are held server-side and
// keyed by an opaque cookie token; the default in-memory storage is enough
// for a single-process deployment.
func NewStore(cfg *config.Config) *fibersession.Store {
	return fibersession.New(fibersession.Config{
		Expiration:     cfg.SessionTTL,
		KeyLookup:      "cookie:" + cfg.SessionCookie,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// Load snapshots the caller's identity from the request session and the
// X-Device-ID header.
func Load(c *fiber.Ctx, store *fibersession.Store) (Identity, error) {
	sess, err := store.Get(c)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to load session: %w", err)
	}

	var ident Identity
	if v, ok := sess.Get(keyUserID).(string); ok {
		ident.UserID = v
	}
	if v, ok := sess.Get(keyIsAdmin).(bool); ok {
		ident.IsAdmin = v
	}
	ident.DeviceID = c.Get("X-Device-ID")
	return ident, nil
}

// Apply writes an Update to the request session and saves it. Clearing the
// user identity does not destroy the rest of the session state.
func Apply(c *fiber.Ctx, store *fibersession.Store, upd Update) error {
	if upd.SetUserID == "" && !upd.ClearUserID && !upd.SetAdmin {
		return nil
	}

	sess, err := store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if upd.SetUserID != "" {
		sess.Set(keyUserID, upd.SetUserID)
	}
	if upd.ClearUserID {
		sess.Delete(keyUserID)
	}
	if upd.SetAdmin {
		sess.Set(keyIsAdmin, true)
	}
	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ClearAdmin drops the admin flag, keeping the rest of the session.
func ClearAdmin(c *fiber.Ctx, store *fibersession.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	sess.Delete(keyIsAdmin)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
