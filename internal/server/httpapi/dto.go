package httpapi

import (
	"time"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/services"
)

// Wire types of the JSON contract. Field names must stay stable, clients
// depend on them.

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type userProfile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Login   string `json:"login"`
}

type createDependentRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Login   string `json:"login" binding:"required"`
}

type mealView struct {
	ID       int64  `json:"id"`
	MealType string `json:"meal_type"`
	Time     string `json:"time"`
	RecipeID int64  `json:"spoonacular_recipe_id"`
	Eaten    bool   `json:"eaten"`
	Comment  string `json:"comment,omitempty"`
}

type medicationView struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Time             string `json:"time"`
	WithMealRelation string `json:"with_meal_relation"`
	Description      string `json:"description"`
	Taken            bool   `json:"taken"`
}

type planView struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	DayStart    string           `json:"day_start"`
	Meals       []mealView       `json:"meals"`
	Medications []medicationView `json:"medications"`
}

type mealReplaceRequest struct {
	RecipeID int64  `json:"spoonacular_recipe_id" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

type mealDetailsRequest struct {
	Time     string `json:"time"`
	MealType string `json:"meal_type"`
}

type mealStatusRequest struct {
	Eaten   bool   `json:"eaten"`
	Comment string `json:"comment"`
}

type medicationDetailsRequest struct {
	Name             string `json:"name"`
	Time             string `json:"time"`
	WithMealRelation string `json:"with_meal_relation"`
	Description      string `json:"description"`
}

type medicationStatusRequest struct {
	Taken bool `json:"taken"`
}

type recipeView struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	Summary        string `json:"summary"`
	ReadyInMinutes int    `json:"ready_in_minutes"`
	Servings       int    `json:"servings"`
}

type notificationView struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
	IsRead  bool   `json:"is_read"`
}

type healthFormRequest struct {
	Height          int    `json:"height" binding:"required"`
	Weight          int    `json:"weight" binding:"required"`
	MealsPerDay     int    `json:"number_of_meals_per_day" binding:"required"`
	DietPreferences string `json:"diet_preferences"`
	Allergies       string `json:"allergies"`
	MedicamentUsage string `json:"medicament_usage"`
}

type healthFormView struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	Height          int    `json:"height"`
	Weight          int    `json:"weight"`
	MealsPerDay     int    `json:"number_of_meals_per_day"`
	DietPreferences string `json:"diet_preferences"`
	Allergies       string `json:"allergies"`
	MedicamentUsage string `json:"medicament_usage"`
	CreatedAt       string `json:"created_at"`
}

// planDateFormat is the calendar-day format used in plan URLs and bodies.
const planDateFormat = "2006-01-02"

func toUserProfile(u *models.User) userProfile {
	return userProfile{ID: u.ID, Name: u.Name, Surname: u.Surname, Login: u.Login}
}

func toMealView(m *models.Meal) mealView {
	return mealView{
		ID:       m.ID,
		MealType: m.MealType,
		Time:     m.Time,
		RecipeID: m.RecipeID,
		Eaten:    m.Eaten,
		Comment:  m.Comment,
	}
}

func toMedicationView(m *models.Medication) medicationView {
	return medicationView{
		ID:               m.ID,
		Name:             m.Name,
		Time:             m.Time,
		WithMealRelation: m.WithMealRelation,
		Description:      m.Description,
		Taken:            m.Taken,
	}
}

func toPlanView(v *services.PlanView) planView {
	out := planView{
		ID:          v.Plan.ID,
		UserID:      v.Plan.UserID,
		DayStart:    v.Plan.DayStart.Format(planDateFormat),
		Meals:       []mealView{},
		Medications: []medicationView{},
	}
	for i := range v.Meals {
		out.Meals = append(out.Meals, toMealView(&v.Meals[i]))
	}
	for i := range v.Medications {
		out.Medications = append(out.Medications, toMedicationView(&v.Medications[i]))
	}
	return out
}

func toRecipeView(r *models.Recipe) recipeView {
	return recipeView{
		ID:             r.ID,
		Title:          r.Title,
		Image:          r.Image,
		Summary:        r.Summary,
		ReadyInMinutes: r.ReadyInMinutes,
		Servings:       r.Servings,
	}
}

func toNotificationView(n *models.Notification) notificationView {
	return notificationView{
		ID:      n.ID,
		Type:    n.Type,
		Message: n.Message,
		SentAt:  n.SentAt.Format(time.RFC3339),
		IsRead:  n.IsRead,
	}
}

func toHealthFormView(f *models.HealthForm) healthFormView {
	return healthFormView{
		ID:              f.ID,
		UserID:          f.UserID,
		Height:          f.Height,
		Weight:          f.Weight,
		MealsPerDay:     f.MealsPerDay,
		DietPreferences: f.DietPreferences,
		Allergies:       f.Allergies,
		MedicamentUsage: f.MedicamentUsage,
		CreatedAt:       f.CreatedAt.Format(time.RFC3339),
	}
}
