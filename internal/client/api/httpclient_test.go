package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/annapetrenko/mealkeeper/internal/client/session"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Anna"}`))
	}))
	t.Cleanup(srv.Close)

	tokens := session.NewTokenStore()
	tokens.Set("abc")
	c := NewHTTPClient(srv.URL, tokens)

	_, err := c.GetCurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer abc", gotAuth)
}

func TestHTTPClient_NoTokenNoHeader(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"access_token":"t","token_type":"bearer"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, session.NewTokenStore())

	_, err := c.CreateSession(context.Background(), Credentials{Email: "a@b.c", Password: "p"})
	require.NoError(t, err)
	require.False(t, sawHeader, "request without a token must not carry an Authorization header")
}

func TestHTTPClient_Unauthorized_ClearsTokenAndFiresHandlerOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	t.Cleanup(srv.Close)

	tokens := session.NewTokenStore()
	tokens.Set("stale")

	var expired int
	c := NewHTTPClient(srv.URL, tokens,
		WithSessionExpiredHandler(func() { expired++ }))

	_, err := c.GetMyNotifications(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnauthorized, "caller's error path must still run")

	require.Equal(t, "", tokens.Get(), "in-memory token must be cleared")
	require.Equal(t, 1, expired, "handler fires exactly once per 401 response")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "token expired", apiErr.Message)
}

func TestHTTPClient_ApplicationError_KeepsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid password"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, session.NewTokenStore())

	_, err := c.CreateSession(context.Background(), Credentials{Email: "a@b.c", Password: "x"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Invalid password", apiErr.Message)
	require.False(t, errors.Is(err, ErrUnauthorized), "400 is not a session failure")
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPClient(srv.URL, session.NewTokenStore())

	_, err := c.GetCurrentUser(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_RequestInterceptorFailureAbortsSend(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, session.NewTokenStore())
	boom := errors.New("boom")
	c.reqInterceptors = append(c.reqInterceptors, func(req *http.Request) error { return boom })

	_, err := c.GetCurrentUser(context.Background())
	require.ErrorIs(t, err, boom)
	require.False(t, called, "request must not be sent when an interceptor fails")
}

func TestHTTPClient_SearchRecipes_QueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`[{"id":7,"title":"soup"}]`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, session.NewTokenStore())

	recipes, err := c.SearchRecipes(context.Background(), "chicken soup")
	require.NoError(t, err)
	require.Equal(t, "chicken soup", gotQuery)
	require.Len(t, recipes, 1)
	require.Equal(t, int64(7), recipes[0].ID)
}
