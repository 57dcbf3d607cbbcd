package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparcom/backend/internal/application/auth"
	"github.com/sparcom/backend/internal/application/events"
	"github.com/sparcom/backend/internal/application/roles"
	"github.com/sparcom/backend/internal/infrastructure/memory"
	"github.com/sparcom/backend/internal/infrastructure/security"
	http_handlers "github.com/sparcom/backend/internal/transport/http/handlers"
	"github.com/sparcom/backend/internal/transport/http/router"
)

type testEnv struct {
	handler http.Handler
	users   *memory.UserRepo
	apps    *memory.ApplicationRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	lg := zerolog.Nop()
	users := memory.NewUserRepo()
	sessions := memory.NewSessionStore()
	eventsRepo := memory.NewEventRepo()
	appsRepo := memory.NewApplicationRepo()
	pub := memory.NewNoopPublisher(lg)

	authSvc := auth.NewService(users, security.NewPBKDF2Hasher(1000), sessions,
		security.NewSessionToken, pub, lg, auth.Config{SessionTTL: time.Hour})
	eventsSvc := events.NewService(eventsRepo, pub, lg, nil)
	rolesSvc := roles.NewService(appsRepo, pub, lg, nil)

	h := router.New(router.Deps{
		Health:   http_handlers.NewHealthHandler(nil),
		Auth:     http_handlers.NewAuthHandler(authSvc, time.Hour, false, lg),
		Events:   http_handlers.NewEventsHandler(eventsSvc, lg),
		Roles:    http_handlers.NewRolesHandler(rolesSvc, lg),
		Sessions: authSvc,
		Logger:   lg,
	}, router.Config{})

	return &testEnv{handler: h, users: users, apps: appsRepo}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		r.Header.Set("X-Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, r)
	return rr
}

func (e *testEnv) registerAndLogin(t *testing.T, username, email, role string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":"pw-123456","role":%q}`, username, email, role)
	rr := e.do(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = e.do(t, http.MethodPost, "/api/v1/auth/login", "", fmt.Sprintf(`{"email":%q,"password":"pw-123456"}`, email))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Len(t, env.Data.Token, 43)
	return env.Data.Token
}

func TestAuthLifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.registerAndLogin(t, "lifecycle", "life@example.com", "guest")

	// me with a live session
	rr := env.do(t, http.MethodGet, "/api/v1/auth/me", token, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var me struct {
		Data struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.Equal(t, "lifecycle", me.Data.Username)
	assert.Equal(t, "guest", me.Data.Role)

	// logout kills the session
	rr = env.do(t, http.MethodPost, "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = env.do(t, http.MethodGet, "/api/v1/auth/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.registerAndLogin(t, "cookie-user", "cookie@example.com", "guest")

	rr := env.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"cookie@example.com","password":"pw-123456"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == security.SessionCookieName && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "login must set the session cookie")
}

func TestMeAcceptsCookieAuth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.registerAndLogin(t, "cookie-auth", "ca@example.com", "guest")

	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	r.AddCookie(&http.Cookie{Name: security.SessionCookieName, Value: token})
	rr := httptest.NewRecorder()
	env.handler.ServeHTTP(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestEventCreation_RoleGated(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	guestToken := env.registerAndLogin(t, "plain-guest", "guest@example.com", "guest")
	orgToken := env.registerAndLogin(t, "organizer-1", "org@example.com", "organizer")

	eventBody := `{"title":"Steam night","description":"Venik session","event_date":"2026-09-15T18:00:00Z","price_per_person":35}`

	// guests are rejected
	rr := env.do(t, http.MethodPost, "/api/v1/events/", guestToken, eventBody)
	assert.Equal(t, http.StatusForbidden, rr.Code, rr.Body.String())

	// anonymous is rejected
	rr = env.do(t, http.MethodPost, "/api/v1/events/", "", eventBody)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// organizers create drafts
	rr = env.do(t, http.MethodPost, "/api/v1/events/", orgToken, eventBody)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Data struct {
			EventID string `json:"event_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.EventID)

	// the new draft is invisible with the default filter
	rr = env.do(t, http.MethodGet, "/api/v1/events/", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), created.Data.EventID)

	// but visible with status=all
	rr = env.do(t, http.MethodGet, "/api/v1/events/?status=all", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), created.Data.EventID)

	// and fetchable by id
	rr = env.do(t, http.MethodGet, "/api/v1/events/"+created.Data.EventID, "", "")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestRoleApplications_Workflow(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	guestToken := env.registerAndLogin(t, "applicant", "app@example.com", "guest")
	masterToken := env.registerAndLogin(t, "the-master", "master@example.com", "master")

	motivation := strings.Repeat("I have run banya programs for years. ", 3)
	applyBody := fmt.Sprintf(`{"requested_role":"organizer","motivation":%q}`, motivation)

	// guest applies
	rr := env.do(t, http.MethodPost, "/api/v1/roles/applications/", guestToken, applyBody)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	// second pending application conflicts
	rr = env.do(t, http.MethodPost, "/api/v1/roles/applications/", guestToken, applyBody)
	assert.Equal(t, http.StatusConflict, rr.Code, rr.Body.String())

	// the applicant sees their own list
	rr = env.do(t, http.MethodGet, "/api/v1/roles/applications/my", guestToken, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "organizer")

	// guests cannot read the review queue
	rr = env.do(t, http.MethodGet, "/api/v1/roles/applications/", guestToken, "")
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// masters can
	rr = env.do(t, http.MethodGet, "/api/v1/roles/applications/", masterToken, "")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	// register without email
	rr := env.do(t, http.MethodPost, "/api/v1/auth/register", "", `{"username":"x","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// short motivation
	token := env.registerAndLogin(t, "short-m", "sm@example.com", "guest")
	rr = env.do(t, http.MethodPost, "/api/v1/roles/applications/", token, `{"requested_role":"organizer","motivation":"too short"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "motivation_too_short")
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rr := env.do(t, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}
