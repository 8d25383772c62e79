package dependents

import (
	"context"
	"fmt"

	"github.com/annapetrenko/mealkeeper/internal/dbx"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Link(ctx context.Context, guardianID, dependentID int64) error {

	query :=
		`INSERT INTO care_relations (guardian_id, dependent_id)
		 VALUES ($1, $2)
		 ON CONFLICT (guardian_id, dependent_id) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, guardianID, dependentID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByGuardian(ctx context.Context, guardianID int64) ([]models.User, error) {
	query :=
		`SELECT u.id, u.name, u.surname, u.login, u.email FROM users u
		 JOIN care_relations c ON c.dependent_id = u.id
		 WHERE c.guardian_id = $1
		 ORDER BY u.id
		 `

	rows, err := r.db.QueryContext(ctx, query, guardianID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Login, &u.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) IsDependentOf(ctx context.Context, guardianID, dependentID int64) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM care_relations
		   WHERE guardian_id = $1 AND dependent_id = $2
		 )`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, guardianID, dependentID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}
