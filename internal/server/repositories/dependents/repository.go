package dependents

import (
	"context"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type Repository interface {
	Link(ctx context.Context, guardianID, dependentID int64) error
	ListByGuardian(ctx context.Context, guardianID int64) ([]models.User, error)
	IsDependentOf(ctx context.Context, guardianID, dependentID int64) (bool, error)
}
