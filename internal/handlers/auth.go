package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"go.uber.org/zap"

	"icolleague/internal/auth"
	"icolleague/internal/config"
	"icolleague/internal/db"
	"icolleague/internal/middleware"
	"icolleague/internal/models"
	"icolleague/internal/validation"
)

// AuthHandler handles local account registration, login and logout.
type AuthHandler struct {
	users UserStore
	cfg   *config.Config
	log   *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users UserStore, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg, log: log}
}

// Index sends logged-in users to the dashboard and everyone else to login.
func (h *AuthHandler) Index(c fiber.Ctx) error {
	if _, ok := c.Locals("user").(*models.User); ok {
		return c.Redirect().To("/dashboard")
	}
	return c.Redirect().To("/login")
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c fiber.Ctx) error {
	return c.Render("login", page(c, h.cfg, fiber.Map{"Title": "Login"}))
}

// Login verifies credentials and starts a session.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	user, err := h.users.GetUserByUsername(c.Context(), username)
	if err != nil && !errors.Is(err, db.ErrUserNotFound) {
		return err
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		h.log.Info("login failed", zap.String("username", username))
		return c.Render("login", page(c, h.cfg, fiber.Map{
			"Title":    "Login",
			"Username": username,
			"Flash":    &middleware.Flash{Category: middleware.FlashError, Message: "Invalid username or password"},
		}))
	}

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	if err := middleware.LogIn(sess, user); err != nil {
		return err
	}
	middleware.SetFlash(sess, middleware.FlashSuccess, "Login successful!")

	h.log.Info("user logged in", zap.String("username", user.Username))
	return c.Redirect().To("/dashboard")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c fiber.Ctx) error {
	return c.Render("register", page(c, h.cfg, fiber.Map{"Title": "Register"}))
}

// Register creates a local account and sends the user to the login page.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	renderError := func(message string) error {
		return c.Render("register", page(c, h.cfg, fiber.Map{
			"Title":    "Register",
			"Username": username,
			"Flash":    &middleware.Flash{Category: middleware.FlashError, Message: message},
		}))
	}

	if password == "" {
		return renderError("Username and password are required")
	}
	if ok, msg := validation.ValidateUsername(username); !ok {
		return renderError(msg)
	}

	hash, err := auth.HashPassword(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return renderError("Password must be at most 72 bytes")
	}
	if err != nil {
		return err
	}

	user := &models.User{Username: username, PasswordHash: hash}
	if err := h.users.CreateUser(c.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			return renderError("Username already exists")
		}
		return err
	}

	h.log.Info("user registered", zap.String("username", username))
	middleware.SetFlash(session.FromContext(c), middleware.FlashSuccess, "Registration successful! Please login.")
	return c.Redirect().To("/login")
}

// Logout clears the user session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess != nil {
		if err := sess.Reset(); err != nil {
			return err
		}
		middleware.SetFlash(sess, middleware.FlashInfo, "You have been logged out")
	}
	return c.Redirect().To("/login")
}
