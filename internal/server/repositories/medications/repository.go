package medications

import (
	"context"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type Repository interface {
	ListByPlan(ctx context.Context, planID int64) ([]models.Medication, error)
	Create(ctx context.Context, med *models.Medication) (*models.Medication, error)
	UpdateDetails(ctx context.Context, id int64, name, medTime, withMealRelation, description string) (*models.Medication, error)
	UpdateStatus(ctx context.Context, id int64, taken bool) (*models.Medication, error)
}
