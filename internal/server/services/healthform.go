package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/repomanager"
)

// HealthFormService manages the dietary questionnaire.
type HealthFormService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	dependents  *DependentService
}

func NewHealthFormService(db *sql.DB, m repomanager.RepositoryManager, deps *DependentService) *HealthFormService {
	return &HealthFormService{db: db, repomanager: m, dependents: deps}
}

func (s *HealthFormService) Get(ctx context.Context, requesterID, targetID int64) (*models.HealthForm, error) {
	ok, err := s.dependents.CanAccess(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrorForbidden
	}

	form, err := s.repomanager.HealthForms(s.db).GetByUser(ctx, targetID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return form, nil
}

// Save validates and stores the questionnaire, replacing earlier answers.
func (s *HealthFormService) Save(ctx context.Context, requesterID, targetID int64, form *models.HealthForm) (*models.HealthForm, error) {
	ok, err := s.dependents.CanAccess(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrorForbidden
	}

	if form.Height <= 0 || form.Weight <= 0 || form.MealsPerDay <= 0 {
		return nil, common.ErrorValidation
	}

	form.UserID = targetID
	saved, err := s.repomanager.HealthForms(s.db).Upsert(ctx, form)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return saved, nil
}
