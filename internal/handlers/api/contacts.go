package api

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"icolleague/internal/models"
)

// EmployeeSearcher finds directory entries.
type EmployeeSearcher interface {
	SearchEmployees(ctx context.Context, term string) ([]models.Employee, error)
}

// ContactsHandler serves directory search results as JSON.
type ContactsHandler struct {
	employees EmployeeSearcher
	log       *zap.Logger
}

// NewContactsHandler creates a new contacts API handler.
func NewContactsHandler(employees EmployeeSearcher, log *zap.Logger) *ContactsHandler {
	return &ContactsHandler{employees: employees, log: log}
}

// Search returns employees whose name or department contains search_term.
// An empty term returns the whole directory.
func (h *ContactsHandler) Search(c fiber.Ctx) error {
	term := c.FormValue("search_term")

	employees, err := h.employees.SearchEmployees(c.Context(), term)
	if err != nil {
		h.log.Error("employee search failed", zap.String("term", term), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to search contacts")
	}

	return c.JSON(employees)
}
