package cli

import (
	"context"
	"time"

	"github.com/annapetrenko/mealkeeper/internal/client/nav"
)

// navigate resolves a transition through the guard and renders whatever view
// the guard allowed. A redirect to login keeps the originally requested path
// in the target's query so a later login can resume it.
func (a *App) navigate(ctx context.Context, name string) {
	to, err := a.router.Resolve(ctx, nav.Target{Name: name})
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if to.Name == nav.RouteLogin && name != nav.RouteLogin {
		printlnFn("Sign in required.")
	}
	a.current = to
	a.render(ctx)
}

func (a *App) render(ctx context.Context) {
	switch a.current.Name {
	case nav.RouteHome:
		a.viewHome()
	case nav.RouteAbout:
		a.viewAbout()
	case nav.RouteLogin:
		printlnFn("Type 'login' to sign in, or 'register' to create an account.")
	case nav.RouteRegister:
		printlnFn("Type 'register' to create an account.")
	case nav.RouteHealthForm:
		a.viewHealthForm(ctx)
	case nav.RouteDependents:
		a.viewDependents(ctx)
	case nav.RouteMeals:
		a.viewMeals(ctx)
	case nav.RouteNotifications:
		a.viewNotifications(ctx)
	}
}

func (a *App) viewHome() {
	printlnFn("== MealKeeper ==")
	if user := a.authStore.User(); user != nil {
		printfFn("Signed in as %s %s (%s)\n", user.Name, user.Surname, user.Login)
	} else {
		printlnFn("You are browsing as a guest. Type 'login' to sign in.")
	}
}

func (a *App) viewAbout() {
	printlnFn("MealKeeper plans meals and medications for you and the people you care for.")
}

func (a *App) viewHealthForm(ctx context.Context) {
	user := a.authStore.User()
	if user == nil {
		return
	}
	form, err := a.client.GetHealthForm(ctx, user.ID)
	if err != nil {
		printlnFn("could not load health form:", err.Error())
		return
	}
	printlnFn("== Health form ==")
	printfFn("height: %d cm, weight: %d kg, meals per day: %d\n",
		form.Height, form.Weight, form.MealsPerDay)
	printfFn("diet: %s\n", form.DietPreferences)
	printfFn("allergies: %s\n", form.Allergies)
	printfFn("medications: %s\n", form.MedicamentUsage)
}

func (a *App) viewDependents(ctx context.Context) {
	deps, err := a.client.GetMyDependents(ctx)
	if err != nil {
		printlnFn("could not load dependents:", err.Error())
		return
	}
	printlnFn("== Dependents ==")
	if len(deps) == 0 {
		printlnFn("none yet")
		return
	}
	for _, d := range deps {
		printfFn("  [%d] %s %s (%s)\n", d.ID, d.Name, d.Surname, d.Login)
	}
}

func (a *App) viewMeals(ctx context.Context) {
	date := time.Now().Format("2006-01-02")
	plan, err := a.client.GetPlanByDate(ctx, date)
	if err != nil {
		printlnFn("could not load plan:", err.Error())
		return
	}
	printfFn("== Plan for %s ==\n", date)
	for _, m := range plan.Meals {
		mark := " "
		if m.Eaten {
			mark = "x"
		}
		printfFn("  [%s] %s %s (recipe %d)\n", mark, m.Time, m.MealType, m.RecipeID)
	}
	for _, med := range plan.Medications {
		mark := " "
		if med.Taken {
			mark = "x"
		}
		printfFn("  [%s] %s %s (%s)\n", mark, med.Time, med.Name, med.WithMealRelation)
	}
}

func (a *App) viewNotifications(ctx context.Context) {
	items, err := a.client.GetMyNotifications(ctx)
	if err != nil {
		printlnFn("could not load notifications:", err.Error())
		return
	}
	printlnFn("== Notifications ==")
	if len(items) == 0 {
		printlnFn("nothing new")
		return
	}
	for _, n := range items {
		mark := "*"
		if n.IsRead {
			mark = " "
		}
		printfFn("  [%s] %s %s: %s\n", mark, n.SentAt, n.Type, n.Message)
	}
}
