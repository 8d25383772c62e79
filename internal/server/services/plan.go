package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/repomanager"
)

// PlanView is the assembled daily plan returned to the API layer.
type PlanView struct {
	Plan        *models.Plan
	Meals       []models.Meal
	Medications []models.Medication
}

// PlanService assembles dated meal plans.
type PlanService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	dependents  *DependentService
}

func NewPlanService(db *sql.DB, m repomanager.RepositoryManager, deps *DependentService) *PlanService {
	return &PlanService{db: db, repomanager: m, dependents: deps}
}

// GetByDate returns the target user's plan for a calendar day, creating an
// empty one on first access. The requester must be the target or their
// guardian.
func (s *PlanService) GetByDate(ctx context.Context, requesterID, targetID int64, day time.Time) (*PlanView, error) {
	ok, err := s.dependents.CanAccess(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrorForbidden
	}

	day = day.Truncate(24 * time.Hour)

	repo := s.repomanager.Plans(s.db)
	plan, err := repo.GetByDate(ctx, targetID, day)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInternal
		}
		plan, err = repo.Create(ctx, targetID, day)
		if err != nil {
			return nil, common.ErrorInternal
		}
	}

	meals, err := s.repomanager.Meals(s.db).ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	medications, err := s.repomanager.Medications(s.db).ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &PlanView{Plan: plan, Meals: meals, Medications: medications}, nil
}

// authorizeMealAccess resolves the owner of a meal and checks the requester
// may act on it.
func (s *PlanService) authorizeMealAccess(ctx context.Context, requesterID, mealID int64) error {
	owner, err := s.repomanager.Plans(s.db).OwnerOfMeal(ctx, mealID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	ok, err := s.dependents.CanAccess(ctx, requesterID, owner)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorForbidden
	}
	return nil
}

func (s *PlanService) authorizeMedicationAccess(ctx context.Context, requesterID, medicationID int64) error {
	owner, err := s.repomanager.Plans(s.db).OwnerOfMedication(ctx, medicationID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	ok, err := s.dependents.CanAccess(ctx, requesterID, owner)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorForbidden
	}
	return nil
}
