package healthforms

import (
	"context"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type Repository interface {
	GetByUser(ctx context.Context, userID int64) (*models.HealthForm, error)
	Upsert(ctx context.Context, form *models.HealthForm) (*models.HealthForm, error)
}
