package notifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/dbx"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	query :=
		`SELECT id, user_id, type, message, sent_at, is_read FROM notifications
		 WHERE user_id = $1
		 ORDER BY sent_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.SentAt, &n.IsRead); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	query :=
		`INSERT INTO notifications (user_id, type, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, sent_at
		 `

	err := r.db.QueryRowContext(ctx, query, n.UserID, n.Type, n.Message).Scan(&n.ID, &n.SentAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// MarkRead flips the unread flag, but only when the notification belongs
// to userID. A miss on either condition surfaces as ErrorNotFound.
func (r *PostgresRepository) MarkRead(ctx context.Context, id int64, userID int64) (*models.Notification, error) {
	query :=
		`UPDATE notifications SET is_read = TRUE
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, type, message, sent_at, is_read
		 `

	var n models.Notification
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.SentAt, &n.IsRead)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &n, nil
}
