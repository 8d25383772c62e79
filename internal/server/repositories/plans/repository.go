package plans

import (
	"context"
	"time"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type Repository interface {
	GetByDate(ctx context.Context, userID int64, day time.Time) (*models.Plan, error)
	Create(ctx context.Context, userID int64, day time.Time) (*models.Plan, error)
	// OwnerOfMeal and OwnerOfMedication resolve the user a plan entry belongs
	// to, for authorization checks.
	OwnerOfMeal(ctx context.Context, mealID int64) (int64, error)
	OwnerOfMedication(ctx context.Context, medicationID int64) (int64, error)
}
