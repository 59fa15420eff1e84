package handlers

import (
	"github.com/gofiber/fiber/v3"

	"icolleague/internal/config"
)

// MergeBranding copies the configured site title, tagline, footer and logo
// into template data. Pages without a logo render the title as text.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	for key, value := range map[string]string{
		"SiteTitle":   cfg.SiteTitle,
		"SiteTagline": cfg.SiteTagline,
		"SiteFooter":  cfg.SiteFooter,
		"SiteLogoURL": cfg.SiteLogoURL,
	} {
		data[key] = value
	}
	return data
}
