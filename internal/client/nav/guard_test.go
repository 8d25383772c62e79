package nav

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeAuth lets each test pin the auth state the guard observes.
type fakeAuth struct {
	loggedIn   bool
	unverified bool

	checkCalls  int
	checkResult bool
}

func (f *fakeAuth) IsLoggedIn() bool         { return f.loggedIn }
func (f *fakeAuth) HasUnverifiedToken() bool { return f.unverified }

func (f *fakeAuth) CheckToken(ctx context.Context) bool {
	f.checkCalls++
	f.unverified = false
	f.loggedIn = f.checkResult
	return f.checkResult
}

func newTestRouter(t *testing.T, auth AuthState, opts ...RouterOption) *Router {
	t.Helper()
	r, err := NewRouter(DefaultRoutes(), auth, opts...)
	require.NoError(t, err)
	return r
}

func TestResolve_PublicRouteAnonymous(t *testing.T) {
	auth := &fakeAuth{}
	r := newTestRouter(t, auth)

	got, err := r.Resolve(context.Background(), Target{Name: RouteAbout})
	require.NoError(t, err)
	require.Equal(t, RouteAbout, got.Name)
	require.Zero(t, auth.checkCalls, "no token means nothing to verify")
}

func TestResolve_ProtectedRouteAnonymousRedirectsToLogin(t *testing.T) {
	auth := &fakeAuth{}
	r := newTestRouter(t, auth)

	got, err := r.Resolve(context.Background(), Target{Name: RouteHealthForm})
	require.NoError(t, err)
	require.Equal(t, RouteLogin, got.Name)
	require.Equal(t, "/health_form", got.Query.Get(RedirectQueryParam),
		"the originally requested path must be preserved for the post-login redirect")
}

func TestResolve_ProtectedRouteAuthenticatedAllowed(t *testing.T) {
	auth := &fakeAuth{loggedIn: true}
	r := newTestRouter(t, auth)

	got, err := r.Resolve(context.Background(), Target{Name: RouteMeals})
	require.NoError(t, err)
	require.Equal(t, RouteMeals, got.Name)
	require.Zero(t, auth.checkCalls, "confirmed session must not trigger re-verification")
}

func TestResolve_UnverifiedTokenTriggersSingleCheck(t *testing.T) {
	auth := &fakeAuth{unverified: true, checkResult: true}
	r := newTestRouter(t, auth)

	got, err := r.Resolve(context.Background(), Target{Name: RouteHealthForm})
	require.NoError(t, err)
	require.Equal(t, RouteHealthForm, got.Name)
	require.Equal(t, 1, auth.checkCalls)

	// State is resolved now; further navigation stays silent.
	_, err = r.Resolve(context.Background(), Target{Name: RouteMeals})
	require.NoError(t, err)
	require.Equal(t, 1, auth.checkCalls)
}

func TestResolve_UnverifiedTokenRejectedRedirects(t *testing.T) {
	auth := &fakeAuth{unverified: true, checkResult: false}
	r := newTestRouter(t, auth)

	got, err := r.Resolve(context.Background(), Target{Name: RouteHealthForm})
	require.NoError(t, err)
	require.Equal(t, RouteLogin, got.Name)
	require.Equal(t, 1, auth.checkCalls)
}

func TestResolve_LoginWhileAuthenticatedRedirectsToLanding(t *testing.T) {
	auth := &fakeAuth{loggedIn: true}
	r := newTestRouter(t, auth)

	got, err := r.Resolve(context.Background(), Target{Name: RouteLogin})
	require.NoError(t, err)
	require.Equal(t, RouteAbout, got.Name)

	got, err = r.Resolve(context.Background(), Target{Name: RouteRegister})
	require.NoError(t, err)
	require.Equal(t, RouteAbout, got.Name)
}

func TestResolve_LoginWhileAuthenticatedHonorsStashedRedirect(t *testing.T) {
	auth := &fakeAuth{loggedIn: true}
	r := newTestRouter(t, auth)

	q := url.Values{}
	q.Set(RedirectQueryParam, "/health_form")
	got, err := r.Resolve(context.Background(), Target{Name: RouteLogin, Query: q})
	require.NoError(t, err)
	require.Equal(t, RouteHealthForm, got.Name)
}

func TestResolve_VisitorRouteDefaultPolicyAllowsAbout(t *testing.T) {
	// Default policy only pushes authenticated users off login/register;
	// other ForVisitors routes stay reachable.
	auth := &fakeAuth{loggedIn: true}
	r := newTestRouter(t, auth)

	got, err := r.Resolve(context.Background(), Target{Name: RouteAbout})
	require.NoError(t, err)
	require.Equal(t, RouteAbout, got.Name)
}

func TestResolve_VisitorPolicyAllRoutes(t *testing.T) {
	auth := &fakeAuth{loggedIn: true}
	r := newTestRouter(t, auth, WithVisitorPolicy(VisitorPolicyAllRoutes), WithLanding(RouteHealthForm))

	got, err := r.Resolve(context.Background(), Target{Name: RouteHome})
	require.NoError(t, err)
	require.Equal(t, RouteHealthForm, got.Name)
}

func TestResolve_UnknownRoute(t *testing.T) {
	r := newTestRouter(t, &fakeAuth{})

	_, err := r.Resolve(context.Background(), Target{Name: "nope"})
	require.Error(t, err)
}

func TestAfterLoginTarget(t *testing.T) {
	r := newTestRouter(t, &fakeAuth{})

	// No stashed redirect: landing route.
	got := r.AfterLoginTarget(nil)
	require.Equal(t, RouteAbout, got.Name)

	// Stashed redirect wins.
	q := url.Values{}
	q.Set(RedirectQueryParam, "/dependents")
	got = r.AfterLoginTarget(q)
	require.Equal(t, RouteDependents, got.Name)

	// Unresolvable redirect falls back to landing.
	q.Set(RedirectQueryParam, "/no/such/path")
	got = r.AfterLoginTarget(q)
	require.Equal(t, RouteAbout, got.Name)
}

func TestGuardRoundTrip_RedirectThenLoginThenRetry(t *testing.T) {
	auth := &fakeAuth{}
	r := newTestRouter(t, auth)
	ctx := context.Background()

	// Logged out: protected route bounces to login with the path stashed.
	redirected, err := r.Resolve(ctx, Target{Name: RouteHealthForm})
	require.NoError(t, err)
	require.Equal(t, RouteLogin, redirected.Name)

	// After a successful login the stashed target resolves without another
	// redirect.
	auth.loggedIn = true
	after := r.AfterLoginTarget(redirected.Query)
	require.Equal(t, RouteHealthForm, after.Name)

	got, err := r.Resolve(ctx, after)
	require.NoError(t, err)
	require.Equal(t, RouteHealthForm, got.Name)
}
