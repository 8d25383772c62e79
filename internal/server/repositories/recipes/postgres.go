package recipes

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

func (r *PostgresRepository) Search(ctx context.Context, query string, limit int) ([]models.Recipe, error) {
	q :=
		`SELECT id, title, image, summary, ready_in_minutes, servings FROM recipes
		 WHERE title ILIKE '%' || $1 || '%'
		 ORDER BY title
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Recipe
	for rows.Next() {
		var rec models.Recipe
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Image, &rec.Summary, &rec.ReadyInMinutes, &rec.Servings); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	q :=
		`SELECT id, title, image, summary, ready_in_minutes, servings FROM recipes
		 WHERE id = $1
		 `

	rec := &models.Recipe{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&rec.ID, &rec.Title, &rec.Image, &rec.Summary, &rec.ReadyInMinutes, &rec.Servings)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	q :=
		`INSERT INTO recipes (title, image, summary, ready_in_minutes, servings)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, q,
		recipe.Title, recipe.Image, recipe.Summary, recipe.ReadyInMinutes, recipe.Servings).Scan(&recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return recipe, nil
}
