package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/annapetrenko/mealkeeper/internal/client/api"
	"github.com/annapetrenko/mealkeeper/internal/client/auth"
	"github.com/annapetrenko/mealkeeper/internal/client/nav"
	"github.com/annapetrenko/mealkeeper/internal/client/repositories/metadata"
	"github.com/annapetrenko/mealkeeper/internal/client/session"
	"github.com/annapetrenko/mealkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	api.Client
	sessionRet *api.TokenResponse
	sessionErr error
	meRet      *api.UserProfile
	meErr      error
	deps       []api.Dependent
}

func (f *fakeClient) CreateSession(_ context.Context, _ api.Credentials) (*api.TokenResponse, error) {
	return f.sessionRet, f.sessionErr
}

func (f *fakeClient) GetCurrentUser(_ context.Context) (*api.UserProfile, error) {
	return f.meRet, f.meErr
}

func (f *fakeClient) GetMyDependents(_ context.Context) ([]api.Dependent, error) {
	return f.deps, nil
}

func newTestApp(t *testing.T, client api.Client) *App {
	t.Helper()

	db, err := InitDatabase(context.Background(), "file:cliapp_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	tokens := session.NewTokenStore()
	storage := metadata.NewSQLiteRepository(db)
	store := auth.NewStore(client, tokens, storage, logger)

	router, err := nav.NewRouter(nav.DefaultRoutes(), store)
	require.NoError(t, err)

	return &App{
		logger:    logger,
		client:    client,
		authStore: store,
		router:    router,
		reader:    bufio.NewReader(strings.NewReader("")),
		current:   nav.Target{Name: nav.RouteHome},
	}
}

func TestNavigateProtectedWhileAnonymous(t *testing.T) {
	out := muteOutput(t)

	app := newTestApp(t, &fakeClient{})
	app.navigate(context.Background(), nav.RouteMeals)

	assert.Equal(t, nav.RouteLogin, app.current.Name)
	assert.Equal(t, "/meals", app.current.Query.Get(nav.RedirectQueryParam))
	assert.Contains(t, out.String(), "Sign in required.")
}

func TestLoginResumesStashedRedirect(t *testing.T) {
	muteOutput(t)

	client := &fakeClient{
		sessionRet: &api.TokenResponse{AccessToken: "tok", TokenType: "bearer"},
		meRet:      &api.UserProfile{ID: 7, Name: "Anna", Login: "anna"},
	}
	app := newTestApp(t, client)

	origText := getSimpleTextFn
	origPass := getPasswordFn
	getSimpleTextFn = func(_ *bufio.Reader, _ string) (string, error) { return "anna@example.com", nil }
	getPasswordFn = func(_ string) (string, error) { return "secret", nil }
	t.Cleanup(func() {
		getSimpleTextFn = origText
		getPasswordFn = origPass
	})

	app.navigate(context.Background(), nav.RouteDependents)
	require.Equal(t, nav.RouteLogin, app.current.Name)

	app.login(context.Background())

	assert.True(t, app.isLoggedIn())
	assert.Equal(t, nav.RouteDependents, app.current.Name)
}

func TestLoginFailureStaysOnLogin(t *testing.T) {
	out := muteOutput(t)

	client := &fakeClient{sessionErr: &api.Error{Status: 401, Message: "Incorrect email or password"}}
	app := newTestApp(t, client)
	app.current = nav.Target{Name: nav.RouteLogin}

	origText := getSimpleTextFn
	origPass := getPasswordFn
	getSimpleTextFn = func(_ *bufio.Reader, _ string) (string, error) { return "anna@example.com", nil }
	getPasswordFn = func(_ string) (string, error) { return "wrong", nil }
	t.Cleanup(func() {
		getSimpleTextFn = origText
		getPasswordFn = origPass
	})

	app.login(context.Background())

	assert.False(t, app.isLoggedIn())
	assert.Equal(t, nav.RouteLogin, app.current.Name)
	assert.Contains(t, out.String(), "Incorrect email or password")
}

func TestSessionExpiredHardReset(t *testing.T) {
	out := muteOutput(t)

	app := newTestApp(t, &fakeClient{
		sessionRet: &api.TokenResponse{AccessToken: "tok", TokenType: "bearer"},
		meRet:      &api.UserProfile{ID: 7, Name: "Anna", Login: "anna"},
	})

	origText := getSimpleTextFn
	origPass := getPasswordFn
	getSimpleTextFn = func(_ *bufio.Reader, _ string) (string, error) { return "anna@example.com", nil }
	getPasswordFn = func(_ string) (string, error) { return "secret", nil }
	t.Cleanup(func() {
		getSimpleTextFn = origText
		getPasswordFn = origPass
	})

	app.login(context.Background())
	require.True(t, app.isLoggedIn())

	app.onSessionExpired()

	assert.False(t, app.isLoggedIn())
	assert.Equal(t, nav.RouteLogin, app.current.Name)
	assert.Contains(t, out.String(), "Session expired")
}
