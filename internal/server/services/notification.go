package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/repomanager"
)

// NotificationService delivers care-related messages.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNotificationService(db *sql.DB, m repomanager.RepositoryManager) *NotificationService {
	return &NotificationService{db: db, repomanager: m}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	items, err := s.repomanager.Notifications(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return items, nil
}

// MarkRead marks one of the user's own notifications as read and returns
// the updated record. Somebody else's id looks the same as a missing one.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error) {
	n, err := s.repomanager.Notifications(s.db).MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return n, nil
}
