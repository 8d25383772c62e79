package plans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) GetByDate(ctx context.Context, userID int64, day time.Time) (*models.Plan, error) {
	query :=
		`SELECT id, user_id, day_start FROM plans
		 WHERE user_id = $1 AND day_start = $2
		 `

	plan := &models.Plan{}
	err := r.db.QueryRowContext(ctx, query, userID, day).Scan(&plan.ID, &plan.UserID, &plan.DayStart)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return plan, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID int64, day time.Time) (*models.Plan, error) {
	query :=
		`INSERT INTO plans (user_id, day_start)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	plan := &models.Plan{UserID: userID, DayStart: day}
	if err := r.db.QueryRowContext(ctx, query, userID, day).Scan(&plan.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return plan, nil
}

func (r *PostgresRepository) OwnerOfMeal(ctx context.Context, mealID int64) (int64, error) {
	query :=
		`SELECT p.user_id FROM plans p
		 JOIN meals m ON m.plan_id = p.id
		 WHERE m.id = $1
		 `

	var userID int64
	err := r.db.QueryRowContext(ctx, query, mealID).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return userID, nil
}

func (r *PostgresRepository) OwnerOfMedication(ctx context.Context, medicationID int64) (int64, error) {
	query :=
		`SELECT p.user_id FROM plans p
		 JOIN medications m ON m.plan_id = p.id
		 WHERE m.id = $1
		 `

	var userID int64
	err := r.db.QueryRowContext(ctx, query, medicationID).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return userID, nil
}
