package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"icolleague/internal/config"
	"icolleague/internal/middleware"
	"icolleague/internal/models"
)

// UserStore is the account storage used by the login and registration flows.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// SSOUserStore provisions accounts from OIDC claims.
type SSOUserStore interface {
	UpsertSSOUser(ctx context.Context, user *models.User) error
}

// page builds template data with branding, the current user and any pending
// flash message.
func page(c fiber.Ctx, cfg *config.Config, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["User"]; !ok {
		if user, ok := c.Locals("user").(*models.User); ok {
			data["User"] = user
		}
	}
	if _, ok := data["Flash"]; !ok {
		if f := middleware.PopFlash(session.FromContext(c)); f != nil {
			data["Flash"] = f
		}
	}
	data["SSOEnabled"] = cfg.IsSSOEnabled()
	return MergeBranding(data, cfg)
}
