package medications

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

const medicationColumns = `id, plan_id, name, med_time, with_meal_relation, description, taken`

func scanMedication(row interface{ Scan(...any) error }) (*models.Medication, error) {
	m := &models.Medication{}
	err := row.Scan(&m.ID, &m.PlanID, &m.Name, &m.Time, &m.WithMealRelation, &m.Description, &m.Taken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListByPlan(ctx context.Context, planID int64) ([]models.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE plan_id = $1 ORDER BY med_time`

	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Medication
	for rows.Next() {
		m, err := scanMedication(rows)
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

func (r *PostgresRepository) Create(ctx context.Context, med *models.Medication) (*models.Medication, error) {
	query :=
		`INSERT INTO medications (plan_id, name, med_time, with_meal_relation, description, taken)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		med.PlanID, med.Name, med.Time, med.WithMealRelation, med.Description, med.Taken).Scan(&med.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return med, nil
}

// UpdateDetails leaves a field untouched when the new value is empty.
func (r *PostgresRepository) UpdateDetails(ctx context.Context, id int64, name, medTime, withMealRelation, description string) (*models.Medication, error) {
	query :=
		`UPDATE medications
		 SET name = COALESCE(NULLIF($2, ''), name),
		     med_time = COALESCE(NULLIF($3, ''), med_time),
		     with_meal_relation = COALESCE(NULLIF($4, ''), with_meal_relation),
		     description = COALESCE(NULLIF($5, ''), description)
		 WHERE id = $1
		 RETURNING ` + medicationColumns

	return scanMedication(r.db.QueryRowContext(ctx, query, id, name, medTime, withMealRelation, description))
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, taken bool) (*models.Medication, error) {
	query :=
		`UPDATE medications
		 SET taken = $2
		 WHERE id = $1
		 RETURNING ` + medicationColumns

	return scanMedication(r.db.QueryRowContext(ctx, query, id, taken))
}
