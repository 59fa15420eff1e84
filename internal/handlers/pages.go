package handlers

import (
	"github.com/gofiber/fiber/v3"

	"icolleague/internal/assistant"
	"icolleague/internal/config"
)

// PageHandler renders the authenticated portal pages.
type PageHandler struct {
	cfg *config.Config
	kb  *assistant.KnowledgeBase
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config, kb *assistant.KnowledgeBase) *PageHandler {
	return &PageHandler{cfg: cfg, kb: kb}
}

// Dashboard renders the landing page with links to each tool.
func (h *PageHandler) Dashboard(c fiber.Ctx) error {
	return c.Render("dashboard", page(c, h.cfg, fiber.Map{
		"Title":  "Dashboard",
		"Active": "dashboard",
	}))
}

// Contacts renders the employee directory search page.
func (h *PageHandler) Contacts(c fiber.Ctx) error {
	return c.Render("contacts", page(c, h.cfg, fiber.Map{
		"Title":  "Contact Search",
		"Active": "contacts",
	}))
}

// Assistant renders the company information assistant.
func (h *PageHandler) Assistant(c fiber.Ctx) error {
	return c.Render("assistant", page(c, h.cfg, fiber.Map{
		"Title":    "Company Assistant",
		"Active":   "assistant",
		"Keywords": h.kb.Entries(),
	}))
}

// StatusFormatter renders the daily status formatter.
func (h *PageHandler) StatusFormatter(c fiber.Ctx) error {
	return c.Render("status_formatter", page(c, h.cfg, fiber.Map{
		"Title":  "Status Formatter",
		"Active": "status_formatter",
	}))
}
