package api

// Wire types exchanged with the MealKeeper backend. Field names follow the
// backend's JSON contract.

// Credentials is the payload of POST /api/v1/auth/session.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the result of a successful session creation.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the current user as returned by GET /api/v1/users/me.
type UserProfile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Login   string `json:"login"`
}

// Dependent is a user account managed by the current user.
type Dependent struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Login   string `json:"login"`
}

// CreateDependentRequest creates a dependent account tied to the caller.
type CreateDependentRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Login   string `json:"login"`
}

// Meal is a single plan entry.
type Meal struct {
	ID       int64  `json:"id"`
	MealType string `json:"meal_type"`
	Time     string `json:"time"`
	RecipeID int64  `json:"spoonacular_recipe_id"`
	Eaten    bool   `json:"eaten"`
	Comment  string `json:"comment,omitempty"`
}

// MealReplaceRequest swaps the recipe behind a plan entry.
type MealReplaceRequest struct {
	RecipeID int64  `json:"spoonacular_recipe_id"`
	MealType string `json:"meal_type"`
	Time     string `json:"time"`
}

// MealDetailsUpdate changes scheduling details of a plan entry.
type MealDetailsUpdate struct {
	Time     string `json:"time,omitempty"`
	MealType string `json:"meal_type,omitempty"`
}

// MealStatusUpdate marks a plan entry as eaten or not.
type MealStatusUpdate struct {
	Eaten   bool   `json:"eaten"`
	Comment string `json:"comment,omitempty"`
}

// Medication is a scheduled medication within a plan.
type Medication struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Time             string `json:"time"`
	WithMealRelation string `json:"with_meal_relation"`
	Description      string `json:"description"`
	Taken            bool   `json:"taken"`
}

// MedicationDetailsUpdate changes scheduling details of a medication.
type MedicationDetailsUpdate struct {
	Name             string `json:"name,omitempty"`
	Time             string `json:"time,omitempty"`
	WithMealRelation string `json:"with_meal_relation,omitempty"`
	Description      string `json:"description,omitempty"`
}

// MedicationStatusUpdate marks a medication as taken or not.
type MedicationStatusUpdate struct {
	Taken bool `json:"taken"`
}

// Plan is the dated set of meals and medications for one user.
type Plan struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	DayStart    string       `json:"day_start"`
	Meals       []Meal       `json:"meals"`
	Medications []Medication `json:"medications"`
}

// Recipe describes a dish from the recipe catalog.
type Recipe struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	Summary        string `json:"summary"`
	ReadyInMinutes int    `json:"ready_in_minutes"`
	Servings       int    `json:"servings"`
}

// Notification is a care-related message for the current user.
type Notification struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
	IsRead  bool   `json:"is_read"`
}

// HealthForm holds the dietary questionnaire of one user.
type HealthForm struct {
	ID              int64  `json:"id,omitempty"`
	UserID          int64  `json:"user_id,omitempty"`
	Height          int    `json:"height"`
	Weight          int    `json:"weight"`
	MealsPerDay     int    `json:"number_of_meals_per_day"`
	DietPreferences string `json:"diet_preferences"`
	Allergies       string `json:"allergies"`
	MedicamentUsage string `json:"medicament_usage"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// errorBody is the backend's JSON error payload.
type errorBody struct {
	Message string `json:"message"`
}
