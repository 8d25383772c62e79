package repomanager

import (
	"context"
	"database/sql"

	"github.com/annapetrenko/mealkeeper/internal/dbx"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/dependents"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/healthforms"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/meals"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/medications"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/notifications"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/plans"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/recipes"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Dependents(db dbx.DBTX) dependents.Repository
	Plans(db dbx.DBTX) plans.Repository
	Meals(db dbx.DBTX) meals.Repository
	Medications(db dbx.DBTX) medications.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Notifications(db dbx.DBTX) notifications.Repository
	HealthForms(db dbx.DBTX) healthforms.Repository
}
