package nav

import (
	"context"
	"fmt"
	"net/url"
)

// AuthState is the slice of the auth store the guard depends on. The guard
// never mutates state directly; it only reads and asks for verification.
type AuthState interface {
	// IsLoggedIn reports a verified session (flag and token both present).
	IsLoggedIn() bool
	// HasUnverifiedToken reports a rehydrated token awaiting verification.
	HasUnverifiedToken() bool
	// CheckToken resolves the ambiguous state, returning the outcome.
	CheckToken(ctx context.Context) bool
}

// VisitorPolicy controls which routes an authenticated user is redirected
// away from. The route schema marks several public routes ForVisitors, but
// revisions of the app disagreed on how wide the block should be, so it is
// configuration rather than a fixed rule.
type VisitorPolicy int

const (
	// VisitorPolicyLoginRegister redirects authenticated users only away
	// from the login and register views. Default.
	VisitorPolicyLoginRegister VisitorPolicy = iota
	// VisitorPolicyAllRoutes redirects authenticated users away from every
	// route marked ForVisitors.
	VisitorPolicyAllRoutes
)

// Router owns the route table and evaluates the guard for every transition.
type Router struct {
	routes  map[string]Route
	auth    AuthState
	policy  VisitorPolicy
	landing string // where authenticated users land when pushed off a visitor route
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithVisitorPolicy overrides the default visitor policy.
func WithVisitorPolicy(p VisitorPolicy) RouterOption {
	return func(r *Router) { r.policy = p }
}

// WithLanding overrides the default landing route for redirected
// authenticated users.
func WithLanding(name string) RouterOption {
	return func(r *Router) { r.landing = name }
}

// NewRouter builds a router over the given table. Route names must be unique
// and parents must exist.
func NewRouter(routes []Route, auth AuthState, opts ...RouterOption) (*Router, error) {
	r := &Router{
		routes:  make(map[string]Route, len(routes)),
		auth:    auth,
		policy:  VisitorPolicyLoginRegister,
		landing: RouteAbout,
	}
	for _, rt := range routes {
		if _, dup := r.routes[rt.Name]; dup {
			return nil, fmt.Errorf("duplicate route %q", rt.Name)
		}
		r.routes[rt.Name] = rt
	}
	for _, rt := range r.routes {
		if rt.Parent != "" {
			if _, ok := r.routes[rt.Parent]; !ok {
				return nil, fmt.Errorf("route %q: unknown parent %q", rt.Name, rt.Parent)
			}
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Route returns the table entry for name.
func (r *Router) Route(name string) (Route, bool) {
	rt, ok := r.routes[name]
	return rt, ok
}

// matched returns the chain of route records for name: the route itself and
// its ancestors.
func (r *Router) matched(name string) []Route {
	var chain []Route
	for cur, ok := r.routes[name]; ok; cur, ok = r.routes[cur.Parent] {
		chain = append(chain, cur)
		if cur.Parent == "" {
			break
		}
	}
	return chain
}

// fullPath renders the path of a target including its query.
func (r *Router) fullPath(t Target) string {
	rt, ok := r.routes[t.Name]
	if !ok {
		return "/"
	}
	if len(t.Query) == 0 {
		return rt.Path
	}
	return rt.Path + "?" + t.Query.Encode()
}

// AfterLoginTarget is the deterministic post-login destination: the stashed
// redirect target when the login view was reached through a guard redirect,
// otherwise the landing route.
func (r *Router) AfterLoginTarget(q url.Values) Target {
	if redirect := q.Get(RedirectQueryParam); redirect != "" {
		if name, query, ok := r.findByPath(redirect); ok {
			return Target{Name: name, Query: query}
		}
	}
	return Target{Name: r.landing}
}

// findByPath resolves a full path (possibly with query) back to a route.
func (r *Router) findByPath(fullPath string) (string, url.Values, bool) {
	u, err := url.Parse(fullPath)
	if err != nil {
		return "", nil, false
	}
	for name, rt := range r.routes {
		if rt.Path == u.Path {
			q := u.Query()
			if len(q) == 0 {
				q = nil
			}
			return name, q, true
		}
	}
	return "", nil, false
}
