// Package models holds the persistent entities of the MealKeeper server.
package models

import "time"

type User struct {
	ID           int64
	Name         string
	Surname      string
	Login        string
	Email        string
	PasswordHash string
}

// CareRelation ties a dependent account to the user who manages it.
type CareRelation struct {
	ID          int64
	GuardianID  int64
	DependentID int64
}

type Plan struct {
	ID       int64
	UserID   int64
	DayStart time.Time
}

type Meal struct {
	ID       int64
	PlanID   int64
	MealType string
	Time     string
	RecipeID int64
	Eaten    bool
	Comment  string
}

type Medication struct {
	ID               int64
	PlanID           int64
	Name             string
	Time             string
	WithMealRelation string
	Description      string
	Taken            bool
}

type Recipe struct {
	ID             int64
	Title          string
	Image          string
	Summary        string
	ReadyInMinutes int
	Servings       int
}

type Notification struct {
	ID      int64
	UserID  int64
	Type    string
	Message string
	SentAt  time.Time
	IsRead  bool
}

type HealthForm struct {
	ID              int64
	UserID          int64
	Height          int
	Weight          int
	MealsPerDay     int
	DietPreferences string
	Allergies       string
	MedicamentUsage string
	CreatedAt       time.Time
}
