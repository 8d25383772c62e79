// Package nav is the client-side router: a static route table plus the
// guard evaluated before every transition. Access policy lives here and
// nowhere else.
package nav

import "net/url"

// Route names used across the client.
const (
	RouteHome          = "home"
	RouteLogin         = "login"
	RouteRegister      = "register"
	RouteAbout         = "about"
	RouteHealthForm    = "health_form"
	RouteDependents    = "dependents"
	RouteMeals         = "meals"
	RouteNotifications = "notifications"
)

// Meta is the static access configuration of a route. RequiresAuth is
// authoritative; ForVisitors is best-effort policy for already-authenticated
// users.
type Meta struct {
	RequiresAuth bool
	ForVisitors  bool
}

// Route is one entry of the route table. Parent, when set, names the route
// this one is nested under; guard checks consider the whole matched chain.
type Route struct {
	Name   string
	Path   string
	Meta   Meta
	Parent string
}

// Target is a navigation destination: a route name plus optional query
// values (used to stash the originally requested path across a login
// redirect).
type Target struct {
	Name  string
	Query url.Values
}

// RedirectQueryParam carries the originally intended path through the login
// redirect.
const RedirectQueryParam = "redirect"

// DefaultRoutes mirrors the application's view surface.
func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteHome, Path: "/", Meta: Meta{RequiresAuth: false, ForVisitors: true}},
		{Name: RouteLogin, Path: "/login", Meta: Meta{RequiresAuth: false, ForVisitors: true}},
		{Name: RouteRegister, Path: "/register", Meta: Meta{RequiresAuth: false, ForVisitors: true}},
		{Name: RouteAbout, Path: "/about", Meta: Meta{RequiresAuth: false, ForVisitors: true}},
		{Name: RouteHealthForm, Path: "/health_form", Meta: Meta{RequiresAuth: true}},
		{Name: RouteDependents, Path: "/dependents", Meta: Meta{RequiresAuth: true}},
		{Name: RouteMeals, Path: "/meals", Meta: Meta{RequiresAuth: true}},
		{Name: RouteNotifications, Path: "/notifications", Meta: Meta{RequiresAuth: true}},
	}
}
