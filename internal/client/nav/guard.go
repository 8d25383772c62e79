package nav

import (
	"context"
	"fmt"
	"net/url"
)

// Resolve evaluates the guard for a transition to the given target and
// returns the destination actually allowed: the target itself, or a
// redirect.
//
// The verification rule in step one deliberately matches "not yet known"
// rather than "definitely anonymous": verifying on a bare !IsLoggedIn would
// cost a round-trip on every navigation even after the user is confirmed,
// while verifying on token presence alone would re-check tokens already
// known invalid. Only the combination — token present, flag unset — is
// ambiguous and worth a CheckToken.
func (r *Router) Resolve(ctx context.Context, to Target) (Target, error) {
	rt, ok := r.routes[to.Name]
	if !ok {
		return Target{}, fmt.Errorf("unknown route %q", to.Name)
	}

	if r.auth.HasUnverifiedToken() {
		// Block this navigation (and only it) until auth state resolves.
		r.auth.CheckToken(ctx)
	}

	requiresAuth := false
	forVisitors := false
	for _, rec := range r.matched(to.Name) {
		requiresAuth = requiresAuth || rec.Meta.RequiresAuth
		forVisitors = forVisitors || rec.Meta.ForVisitors
	}

	loggedIn := r.auth.IsLoggedIn()

	if requiresAuth && !loggedIn {
		q := url.Values{}
		q.Set(RedirectQueryParam, r.fullPath(to))
		return Target{Name: RouteLogin, Query: q}, nil
	}

	if forVisitors && loggedIn && r.blocksVisitorRoute(rt) {
		return r.AfterLoginTarget(to.Query), nil
	}

	return to, nil
}

func (r *Router) blocksVisitorRoute(rt Route) bool {
	switch r.policy {
	case VisitorPolicyAllRoutes:
		return true
	default:
		return rt.Name == RouteLogin || rt.Name == RouteRegister
	}
}
