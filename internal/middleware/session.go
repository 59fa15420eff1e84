package middleware

import (
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"icolleague/internal/models"
)

// Session keys shared by the auth middleware and handlers.
const (
	SessionUserID        = "user_id"
	SessionUsername      = "username"
	SessionFlash         = "flash"
	SessionFlashCategory = "flash_category"
)

// Flash categories, matching the alert-* CSS classes.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// SetFlash stores a message for the next page render.
func SetFlash(sess *session.Middleware, category, message string) {
	if sess == nil {
		return
	}
	sess.Set(SessionFlashCategory, category)
	sess.Set(SessionFlash, message)
}

// PopFlash returns and clears the pending message, if any.
func PopFlash(sess *session.Middleware) *Flash {
	if sess == nil {
		return nil
	}
	message, _ := sess.Get(SessionFlash).(string)
	if message == "" {
		return nil
	}
	category, _ := sess.Get(SessionFlashCategory).(string)
	sess.Delete(SessionFlash)
	sess.Delete(SessionFlashCategory)
	return &Flash{Category: category, Message: message}
}

// LogIn records user as authenticated in sess.
func LogIn(sess *session.Middleware, user *models.User) error {
	// Rotate the session ID on privilege change.
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(SessionUserID, user.ID.String())
	sess.Set(SessionUsername, user.DisplayName())
	return nil
}

// sessionUserID returns the logged-in user's ID from sess.
func sessionUserID(sess *session.Middleware) (uuid.UUID, bool) {
	if sess == nil {
		return uuid.Nil, false
	}
	raw, ok := sess.Get(SessionUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
