// Package api is the single egress point for all backend calls. It wraps
// net/http with a fixed base URL, a fixed request timeout, and an explicit
// ordered interceptor pipeline that injects the session token on the way out
// and tears the session down on 401 on the way in.
package api

import "context"

// Client is the backend surface consumed by the rest of the client.
type Client interface {
	// Session lifecycle.
	CreateSession(ctx context.Context, creds Credentials) (*TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*UserProfile, error)
	GetCurrentUser(ctx context.Context) (*UserProfile, error)

	// Dependents.
	GetMyDependents(ctx context.Context) ([]Dependent, error)
	CreateDependent(ctx context.Context, req CreateDependentRequest) (*Dependent, error)
	GetDependentPlanByDate(ctx context.Context, dependentID int64, date string) (*Plan, error)

	// Meals and recipes.
	GetPlanByDate(ctx context.Context, date string) (*Plan, error)
	SearchRecipes(ctx context.Context, query string) ([]Recipe, error)
	GetRecipeDetails(ctx context.Context, recipeID int64) (*Recipe, error)
	ReplaceMeal(ctx context.Context, mealID int64, req MealReplaceRequest) (*Meal, error)
	UpdateMealDetails(ctx context.Context, mealID int64, req MealDetailsUpdate) (*Meal, error)
	UpdateMealStatus(ctx context.Context, mealID int64, req MealStatusUpdate) (*Meal, error)

	// Medications.
	UpdateMedicationDetails(ctx context.Context, medID int64, req MedicationDetailsUpdate) (*Medication, error)
	UpdateMedicationStatus(ctx context.Context, medID int64, req MedicationStatusUpdate) (*Medication, error)

	// Notifications.
	GetMyNotifications(ctx context.Context) ([]Notification, error)

	// Health form.
	GetHealthForm(ctx context.Context, userID int64) (*HealthForm, error)
	SaveHealthForm(ctx context.Context, userID int64, form HealthForm) (*HealthForm, error)
}
