package notifications

import (
	"context"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Notification, error)
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	MarkRead(ctx context.Context, id int64, userID int64) (*models.Notification, error)
}
