package healthforms

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

func (r *PostgresRepository) GetByUser(ctx context.Context, userID int64) (*models.HealthForm, error) {
	query :=
		`SELECT id, user_id, height, weight, meals_per_day,
		        diet_preferences, allergies, medicament_usage, created_at
		 FROM health_forms
		 WHERE user_id = $1
		 `

	form := &models.HealthForm{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&form.ID, &form.UserID, &form.Height, &form.Weight, &form.MealsPerDay,
		&form.DietPreferences, &form.Allergies, &form.MedicamentUsage, &form.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return form, nil
}

// Upsert keeps one form per user, overwriting previous answers.
func (r *PostgresRepository) Upsert(ctx context.Context, form *models.HealthForm) (*models.HealthForm, error) {
	query :=
		`INSERT INTO health_forms
		   (user_id, height, weight, meals_per_day, diet_preferences, allergies, medicament_usage)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   height = EXCLUDED.height,
		   weight = EXCLUDED.weight,
		   meals_per_day = EXCLUDED.meals_per_day,
		   diet_preferences = EXCLUDED.diet_preferences,
		   allergies = EXCLUDED.allergies,
		   medicament_usage = EXCLUDED.medicament_usage
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		form.UserID, form.Height, form.Weight, form.MealsPerDay,
		form.DietPreferences, form.Allergies, form.MedicamentUsage).Scan(&form.ID, &form.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return form, nil
}
