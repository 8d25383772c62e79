package services

import (
	"context"
	"errors"
	"testing"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
)

func newMealService(t *testing.T, rm *fakeRepoManager) *MealService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	deps := NewDependentService(db, rm)
	plans := NewPlanService(db, rm, deps)
	return NewMealService(db, rm, plans)
}

func TestMealService_Replace_Success(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.ownerOut = 7
	rm.r.getOut = &models.Recipe{ID: 100, Title: "soup"}
	rm.m.out = &models.Meal{ID: 1, RecipeID: 100, MealType: "lunch"}
	s := newMealService(t, rm)

	meal, err := s.Replace(context.Background(), 7, 1, 100, "lunch", "13:00")
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if meal.RecipeID != 100 {
		t.Fatalf("unexpected meal: %+v", meal)
	}
}

func TestMealService_Replace_UnknownRecipe(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.ownerOut = 7
	rm.r.getErr = common.ErrorNotFound
	s := newMealService(t, rm)

	_, err := s.Replace(context.Background(), 7, 1, 999, "lunch", "13:00")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected common.ErrorValidation, got %v", err)
	}
}

func TestMealService_UpdateStatus_ForbiddenForStrangers(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.ownerOut = 8
	rm.d.linkedOut = false
	s := newMealService(t, rm)

	_, err := s.UpdateStatus(context.Background(), 7, 1, true, "tasty")
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("expected common.ErrorForbidden, got %v", err)
	}
}

func TestMealService_UpdateDetails_UnknownMeal(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.ownerErr = common.ErrorNotFound
	s := newMealService(t, rm)

	_, err := s.UpdateDetails(context.Background(), 7, 404, "dinner", "19:00")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
