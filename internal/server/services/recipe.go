package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/server/config"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/repomanager"
)

// RecipeService queries the recipe catalog.
type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	searchLimit int
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *RecipeService {
	return &RecipeService{db: db, repomanager: m, searchLimit: cfg.RecipeSearchLimit}
}

func (s *RecipeService) Search(ctx context.Context, query string) ([]models.Recipe, error) {
	recipes, err := s.repomanager.Recipes(s.db).Search(ctx, query, s.searchLimit)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return recipes, nil
}

func (s *RecipeService) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe, err := s.repomanager.Recipes(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return recipe, nil
}
