package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"icolleague/internal/assistant"
	"icolleague/internal/models"
	"icolleague/internal/status"
)

type fakeDirectory struct {
	employees []models.Employee
	err       error
	lastTerm  string
}

func (f *fakeDirectory) SearchEmployees(_ context.Context, term string) ([]models.Employee, error) {
	f.lastTerm = term
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Employee{}
	for _, e := range f.employees {
		if term == "" || strings.Contains(strings.ToLower(e.Name+" "+e.Department), strings.ToLower(term)) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls [][2]string
}

func (r *fakeRecorder) RecordAssistantLookup(keyword, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, [2]string{keyword, outcome})
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestContactsSearch(t *testing.T) {
	dir := &fakeDirectory{employees: []models.Employee{
		{Name: "John Smith", Email: "john.smith@company.com", Department: "Engineering", Phone: "+1-555-0101"},
		{Name: "Sarah Johnson", Email: "sarah.johnson@company.com", Department: "HR", Phone: "+1-555-0102"},
	}}
	app := fiber.New()
	app.Post("/search_contacts", NewContactsHandler(dir, zap.NewNop()).Search)

	code, body := postForm(t, app, "/search_contacts", url.Values{"search_term": {"engineer"}})
	require.Equal(t, http.StatusOK, code)

	var got []models.Employee
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "John Smith", got[0].Name)
	assert.Equal(t, "engineer", dir.lastTerm)
	assert.NotContains(t, string(body), `"id"`)
}

func TestContactsSearch_NoMatchesIsEmptyArray(t *testing.T) {
	app := fiber.New()
	app.Post("/search_contacts", NewContactsHandler(&fakeDirectory{}, zap.NewNop()).Search)

	code, body := postForm(t, app, "/search_contacts", url.Values{"search_term": {"nobody"}})
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))
}

func TestContactsSearch_StoreError(t *testing.T) {
	app := fiber.New()
	app.Post("/search_contacts", NewContactsHandler(&fakeDirectory{err: errors.New("boom")}, zap.NewNop()).Search)

	code, body := postForm(t, app, "/search_contacts", url.Values{"search_term": {"x"}})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.JSONEq(t, `{"error":"failed to search contacts"}`, string(body))
}

func TestAssistantAsk(t *testing.T) {
	rec := &fakeRecorder{}
	app := fiber.New()
	app.Post("/ask_assistant", NewAssistantHandler(assistant.Default(), rec, zap.NewNop()).Ask)

	code, body := postForm(t, app, "/ask_assistant", url.Values{"question": {"Tell me about MEDICAL cover"}})
	require.Equal(t, http.StatusOK, code)

	var got models.AskResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Contains(t, got.Response, "Health insurance covers family")

	code, body = postForm(t, app, "/ask_assistant", url.Values{"question": {"what's for lunch on mars"}})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, assistant.DefaultFallback, got.Response)

	assert.Equal(t, [][2]string{
		{"medical", models.OutcomeMatched},
		{"", models.OutcomeFallback},
	}, rec.calls)
}

func TestAssistantAsk_EmptyQuestionWithoutRecorder(t *testing.T) {
	app := fiber.New()
	app.Post("/ask_assistant", NewAssistantHandler(assistant.Default(), nil, zap.NewNop()).Ask)

	code, body := postForm(t, app, "/ask_assistant", url.Values{})
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"response":"`+assistant.DefaultFallback+`"}`, string(body))
}

func TestStatusFormat(t *testing.T) {
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals("user", &models.User{Username: "asha"})
		return c.Next()
	})
	app.Post("/format_status", NewStatusHandler(status.DefaultTemplate()).Format)

	code, body := postForm(t, app, "/format_status", url.Values{"rough_text": {"fixed login. wrote tests"}})
	require.Equal(t, http.StatusOK, code)

	var got models.FormatResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, status.Format("fixed login. wrote tests", "asha"), got.FormattedStatus)
	assert.True(t, strings.HasPrefix(got.FormattedStatus, "Daily Status Update - asha\n\n• Fixed login.\n• Wrote tests."))
}

func TestStatusFormat_TextAlias(t *testing.T) {
	app := fiber.New()
	app.Post("/format_status", NewStatusHandler(status.DefaultTemplate()).Format)

	_, body := postForm(t, app, "/format_status", url.Values{"text": {"done"}})

	var got models.FormatResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, status.Format("done", ""), got.FormattedStatus)
}
