package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"icolleague/internal/assistant"
	"icolleague/internal/config"
	"icolleague/internal/db"
	"icolleague/internal/middleware"
	"icolleague/internal/models"
)

// textViews renders a one-line summary of the template data instead of HTML.
type textViews struct{}

func (textViews) Load() error { return nil }

func (textViews) Render(w io.Writer, name string, binding any, _ ...string) error {
	data, _ := binding.(fiber.Map)
	fmt.Fprintf(w, "template=%s", name)
	if u, ok := data["User"].(*models.User); ok {
		fmt.Fprintf(w, " user=%s", u.Username)
	}
	if f, ok := data["Flash"].(*middleware.Flash); ok {
		fmt.Fprintf(w, " flash=%s:%s", f.Category, f.Message)
	}
	if title, ok := data["SiteTitle"].(string); ok {
		fmt.Fprintf(w, " site=%s", title)
	}
	return nil
}

type memUsers struct {
	mu     sync.Mutex
	byName map[string]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{byName: map[string]*models.User{}}
}

func (m *memUsers) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[user.Username]; ok {
		return db.ErrDuplicateUsername
	}
	user.ID = uuid.New()
	m.byName[user.Username] = user
	return nil
}

func (m *memUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byName[username]; ok {
		return u, nil
	}
	return nil, db.ErrUserNotFound
}

func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, db.ErrUserNotFound
}

func newPortalApp(users *memUsers) *fiber.App {
	cfg := &config.Config{SiteTitle: "iColleague"}
	app := fiber.New(fiber.Config{Views: textViews{}})
	sessionMiddleware, _ := session.NewWithStore()
	app.Use(sessionMiddleware)

	authMW := middleware.NewAuthMiddleware(users)
	authHandler := NewAuthHandler(users, cfg, zap.NewNop())
	pages := NewPageHandler(cfg, assistant.Default())

	app.Get("/", authMW.OptionalAuth, authHandler.Index)
	app.Get("/login", authMW.OptionalAuth, authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/register", authHandler.RegisterPage)
	app.Post("/register", authHandler.Register)
	app.Get("/logout", authHandler.Logout)
	app.Get("/dashboard", authMW.RequireAuth, pages.Dashboard)
	app.Get("/assistant", authMW.RequireAuth, pages.Assistant)
	return app
}

type client struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, app *fiber.App) *client {
	return &client{t: t, app: app, cookies: map[string]*http.Cookie{}}
}

func (c *client) do(req *http.Request) (*http.Response, string) {
	c.t.Helper()
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	resp, err := c.app.Test(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	for _, ck := range resp.Cookies() {
		c.cookies[ck.Name] = ck
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(body)
}

func (c *client) get(path string) (*http.Response, string) {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values) (*http.Response, string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func TestIndex_RedirectsByLoginState(t *testing.T) {
	users := newMemUsers()
	c := newClient(t, newPortalApp(users))

	resp, _ := c.get("/")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	c.post("/register", url.Values{"username": {"asha"}, "password": {"pw"}})
	c.post("/login", url.Values{"username": {"asha"}, "password": {"pw"}})

	resp, _ = c.get("/")
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestRegisterThenLogin(t *testing.T) {
	users := newMemUsers()
	c := newClient(t, newPortalApp(users))

	resp, _ := c.post("/register", url.Values{"username": {"asha"}, "password": {"s3cret"}})
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	stored, err := users.GetUserByUsername(context.Background(), "asha")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)

	_, body := c.get("/login")
	assert.Contains(t, body, "flash=success:Registration successful! Please login.")

	// flash is shown once
	_, body = c.get("/login")
	assert.NotContains(t, body, "flash=")

	resp, _ = c.post("/login", url.Values{"username": {"asha"}, "password": {"s3cret"}})
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	resp, body = c.get("/dashboard")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "template=dashboard")
	assert.Contains(t, body, "user=asha")
	assert.Contains(t, body, "flash=success:Login successful!")
	assert.Contains(t, body, "site=iColleague")
}

func TestRegister_Errors(t *testing.T) {
	users := newMemUsers()
	require.NoError(t, users.CreateUser(context.Background(), &models.User{Username: "taken"}))

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{"missing password", url.Values{"username": {"asha"}}, "Username and password are required"},
		{"missing username", url.Values{"password": {"pw"}}, "Username and password are required"},
		{"invalid characters", url.Values{"username": {"a b"}, "password": {"pw"}}, "Username may only contain"},
		{"duplicate", url.Values{"username": {"taken"}, "password": {"pw"}}, "Username already exists"},
		{"password too long", url.Values{"username": {"asha"}, "password": {strings.Repeat("p", 80)}}, "Password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, newPortalApp(users))
			resp, body := c.post("/register", tt.form)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, body, "template=register")
			assert.Contains(t, body, "flash=error:"+tt.want)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := newMemUsers()
	c := newClient(t, newPortalApp(users))
	c.post("/register", url.Values{"username": {"asha"}, "password": {"right"}})

	for _, form := range []url.Values{
		{"username": {"asha"}, "password": {"wrong"}},
		{"username": {"nobody"}, "password": {"right"}},
		{},
	} {
		resp, body := c.post("/login", form)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "template=login")
		assert.Contains(t, body, "flash=error:Invalid username or password")
	}

	resp, _ := c.get("/dashboard")
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLogout(t *testing.T) {
	users := newMemUsers()
	c := newClient(t, newPortalApp(users))
	c.post("/register", url.Values{"username": {"asha"}, "password": {"pw"}})
	c.post("/login", url.Values{"username": {"asha"}, "password": {"pw"}})

	resp, _ := c.get("/logout")
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	_, body := c.get("/login")
	assert.Contains(t, body, "flash=info:You have been logged out")
	assert.NotContains(t, body, "user=")

	resp, _ = c.get("/dashboard")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestPages_RequireLogin(t *testing.T) {
	c := newClient(t, newPortalApp(newMemUsers()))
	for _, path := range []string{"/dashboard", "/assistant"} {
		resp, _ := c.get(path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestProbes(t *testing.T) {
	healthy := NewProbeHandler(fakePinger{})
	broken := NewProbeHandler(fakePinger{err: errors.New("down")})

	app := fiber.New()
	app.Get("/healthz", broken.Liveness)
	app.Get("/readyz", healthy.Readiness)
	app.Get("/readyz-broken", broken.Readiness)

	for path, want := range map[string]int{
		"/healthz":       fiber.StatusOK,
		"/readyz":        fiber.StatusOK,
		"/readyz-broken": fiber.StatusServiceUnavailable,
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestUserFromClaims(t *testing.T) {
	u := userFromClaims(map[string]any{
		"sub":                "abc-123",
		"email":              "asha@company.com",
		"name":               "Asha Rao",
		"preferred_username": "asha",
		"groups":             []any{"staff"},
	})
	assert.Equal(t, "abc-123", u.Sub)
	assert.Equal(t, "asha", u.Username)
	assert.Equal(t, "asha@company.com", u.Email)
	assert.Equal(t, "Asha Rao", u.Name)

	empty := userFromClaims(map[string]any{"sub": 42})
	assert.Empty(t, empty.Sub)
	assert.Empty(t, empty.Username)
}

func TestGenerateState(t *testing.T) {
	a, err := generateState()
	require.NoError(t, err)
	b, err := generateState()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 24)
}
