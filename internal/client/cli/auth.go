package cli

import (
	"context"

	"github.com/annapetrenko/mealkeeper/internal/client/api"
	"github.com/annapetrenko/mealkeeper/internal/client/nav"
)

// login prompts for credentials and, on success, lands on the view stashed
// in the login redirect (falling back to the default landing view).
func (a *App) login(ctx context.Context) {
	if a.isLoggedIn() {
		printlnFn("already signed in")
		return
	}

	email, err := getSimpleTextFn(a.reader, "email")
	if err != nil {
		printlnFn(err.Error())
		return
	}
	password, err := getPasswordFn("password")
	if err != nil {
		printlnFn(err.Error())
		return
	}

	res := a.authStore.Login(ctx, api.Credentials{Email: email, Password: password})
	if !res.Success {
		printlnFn(res.Error)
		return
	}

	a.current = a.router.AfterLoginTarget(a.current.Query)
	a.render(ctx)
}

func (a *App) register(ctx context.Context) {
	if a.isLoggedIn() {
		printlnFn("already signed in")
		return
	}

	req := api.RegisterRequest{}
	var err error
	if req.Name, err = getSimpleTextFn(a.reader, "name"); err != nil {
		printlnFn(err.Error())
		return
	}
	if req.Surname, err = getSimpleTextFn(a.reader, "surname"); err != nil {
		printlnFn(err.Error())
		return
	}
	if req.Login, err = getSimpleTextFn(a.reader, "login"); err != nil {
		printlnFn(err.Error())
		return
	}
	if req.Email, err = getSimpleTextFn(a.reader, "email"); err != nil {
		printlnFn(err.Error())
		return
	}
	if req.Password, err = getPasswordFn("password"); err != nil {
		printlnFn(err.Error())
		return
	}

	if _, err := a.client.Register(ctx, req); err != nil {
		printlnFn("registration failed:", err.Error())
		return
	}

	printlnFn("account created, you can sign in now")
	a.current = nav.Target{Name: nav.RouteLogin}
}

func (a *App) logout(ctx context.Context) {
	if !a.isLoggedIn() {
		printlnFn("not signed in")
		return
	}
	a.authStore.Logout(ctx)
	a.current = nav.Target{Name: nav.RouteHome}
	printlnFn("signed out")
	a.render(ctx)
}
