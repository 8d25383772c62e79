package recipes

import (
	"context"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type Repository interface {
	Search(ctx context.Context, query string, limit int) ([]models.Recipe, error)
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
}
