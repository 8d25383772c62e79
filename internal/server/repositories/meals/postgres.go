package meals

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

const mealColumns = `id, plan_id, meal_type, meal_time, recipe_id, eaten, comment`

func scanMeal(row interface{ Scan(...any) error }) (*models.Meal, error) {
	m := &models.Meal{}
	err := row.Scan(&m.ID, &m.PlanID, &m.MealType, &m.Time, &m.RecipeID, &m.Eaten, &m.Comment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListByPlan(ctx context.Context, planID int64) ([]models.Meal, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE plan_id = $1 ORDER BY meal_time`

	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	query :=
		`INSERT INTO meals (plan_id, meal_type, meal_time, recipe_id, eaten, comment)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		meal.PlanID, meal.MealType, meal.Time, meal.RecipeID, meal.Eaten, meal.Comment).Scan(&meal.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return meal, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Meal, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE id = $1`
	return scanMeal(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Replace(ctx context.Context, id int64, recipeID int64, mealType, mealTime string) (*models.Meal, error) {
	query :=
		`UPDATE meals
		 SET recipe_id = $2, meal_type = $3, meal_time = $4, eaten = FALSE, comment = ''
		 WHERE id = $1
		 RETURNING ` + mealColumns

	return scanMeal(r.db.QueryRowContext(ctx, query, id, recipeID, mealType, mealTime))
}

// UpdateDetails leaves a field untouched when the new value is empty.
func (r *PostgresRepository) UpdateDetails(ctx context.Context, id int64, mealType, mealTime string) (*models.Meal, error) {
	query :=
		`UPDATE meals
		 SET meal_type = COALESCE(NULLIF($2, ''), meal_type),
		     meal_time = COALESCE(NULLIF($3, ''), meal_time)
		 WHERE id = $1
		 RETURNING ` + mealColumns

	return scanMeal(r.db.QueryRowContext(ctx, query, id, mealType, mealTime))
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, eaten bool, comment string) (*models.Meal, error) {
	query :=
		`UPDATE meals
		 SET eaten = $2, comment = $3
		 WHERE id = $1
		 RETURNING ` + mealColumns

	return scanMeal(r.db.QueryRowContext(ctx, query, id, eaten, comment))
}
