package meals

import (
	"context"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type Repository interface {
	ListByPlan(ctx context.Context, planID int64) ([]models.Meal, error)
	Create(ctx context.Context, meal *models.Meal) (*models.Meal, error)
	GetByID(ctx context.Context, id int64) (*models.Meal, error)
	Replace(ctx context.Context, id int64, recipeID int64, mealType, mealTime string) (*models.Meal, error)
	UpdateDetails(ctx context.Context, id int64, mealType, mealTime string) (*models.Meal, error)
	UpdateStatus(ctx context.Context, id int64, eaten bool, comment string) (*models.Meal, error)
}
