package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/repomanager"
)

// MealService mutates individual plan entries.
type MealService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	plans       *PlanService
}

func NewMealService(db *sql.DB, m repomanager.RepositoryManager, plans *PlanService) *MealService {
	return &MealService{db: db, repomanager: m, plans: plans}
}

// Replace swaps the recipe behind a plan entry. The eaten flag and comment
// reset, the entry is a new dish now.
func (s *MealService) Replace(ctx context.Context, requesterID, mealID, recipeID int64, mealType, mealTime string) (*models.Meal, error) {
	if err := s.plans.authorizeMealAccess(ctx, requesterID, mealID); err != nil {
		return nil, err
	}

	if _, err := s.repomanager.Recipes(s.db).GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorValidation
		}
		return nil, common.ErrorInternal
	}

	meal, err := s.repomanager.Meals(s.db).Replace(ctx, mealID, recipeID, mealType, mealTime)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return meal, nil
}

func (s *MealService) UpdateDetails(ctx context.Context, requesterID, mealID int64, mealType, mealTime string) (*models.Meal, error) {
	if err := s.plans.authorizeMealAccess(ctx, requesterID, mealID); err != nil {
		return nil, err
	}

	meal, err := s.repomanager.Meals(s.db).UpdateDetails(ctx, mealID, mealType, mealTime)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return meal, nil
}

func (s *MealService) UpdateStatus(ctx context.Context, requesterID, mealID int64, eaten bool, comment string) (*models.Meal, error) {
	if err := s.plans.authorizeMealAccess(ctx, requesterID, mealID); err != nil {
		return nil, err
	}

	meal, err := s.repomanager.Meals(s.db).UpdateStatus(ctx, mealID, eaten, comment)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return meal, nil
}
