package api

import (
	"github.com/gofiber/fiber/v3"

	"icolleague/internal/models"
	"icolleague/internal/status"
)

// StatusHandler formats daily status updates.
type StatusHandler struct {
	tmpl status.Template
}

// NewStatusHandler creates a new status API handler using tmpl.
func NewStatusHandler(tmpl status.Template) *StatusHandler {
	return &StatusHandler{tmpl: tmpl}
}

// Format turns the posted rough_text (or text) into a bulleted update headed
// with the current user's name.
func (h *StatusHandler) Format(c fiber.Ctx) error {
	text := c.FormValue("rough_text")
	if text == "" {
		text = c.FormValue("text")
	}

	var label string
	if user, ok := c.Locals("user").(*models.User); ok {
		label = user.DisplayName()
	}

	return c.JSON(models.FormatResponse{FormattedStatus: h.tmpl.Format(text, label)})
}
