package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/repomanager"
)

type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecipeService(rm repomanager.RepositoryManager) *RecipeService {
	return &RecipeService{db: rm.Conn(), repomanager: rm}
}

func (s *RecipeService) List(ctx context.Context, userID int64) ([]*models.Recipe, error) {
	return s.repomanager.Recipes(s.db).List(ctx, userID)
}

func (s *RecipeService) Get(ctx context.Context, userID, id int64) (*models.Recipe, error) {
	return s.repomanager.Recipes(s.db).GetByID(ctx, userID, id)
}

func (s *RecipeService) Create(ctx context.Context, userID int64, recipe *models.Recipe) (*models.Recipe, error) {
	if strings.TrimSpace(recipe.Title) == "" {
		return nil, fmt.Errorf("%w: recipe title is required", common.ErrorValidation)
	}
	recipe.UserID = userID
	return s.repomanager.Recipes(s.db).Create(ctx, recipe)
}

// Update replaces the full row; the owner and id come from the caller's
// identity and the path, never from the body.
func (s *RecipeService) Update(ctx context.Context, userID, id int64, recipe *models.Recipe) error {
	if strings.TrimSpace(recipe.Title) == "" {
		return fmt.Errorf("%w: recipe title is required", common.ErrorValidation)
	}
	recipe.ID = id
	recipe.UserID = userID
	return s.repomanager.Recipes(s.db).Update(ctx, recipe)
}

func (s *RecipeService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Recipes(s.db).Delete(ctx, userID, id)
}
