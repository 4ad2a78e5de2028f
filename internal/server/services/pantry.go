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

type PantryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPantryService(rm repomanager.RepositoryManager) *PantryService {
	return &PantryService{db: rm.Conn(), repomanager: rm}
}

// List returns the caller's items ordered by expiry date ascending,
// undated items last.
func (s *PantryService) List(ctx context.Context, userID int64) ([]*models.PantryItem, error) {
	return s.repomanager.Pantry(s.db).List(ctx, userID)
}

func (s *PantryService) Get(ctx context.Context, userID, id int64) (*models.PantryItem, error) {
	return s.repomanager.Pantry(s.db).GetByID(ctx, userID, id)
}

func (s *PantryService) Create(ctx context.Context, userID int64, item *models.PantryItem) (*models.PantryItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: item name is required", common.ErrorValidation)
	}
	item.UserID = userID
	return s.repomanager.Pantry(s.db).Create(ctx, item)
}

// Update replaces the full row, clearing omitted optional fields.
func (s *PantryService) Update(ctx context.Context, userID, id int64, item *models.PantryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name is required", common.ErrorValidation)
	}
	item.ID = id
	item.UserID = userID
	return s.repomanager.Pantry(s.db).Update(ctx, item)
}

func (s *PantryService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Pantry(s.db).Delete(ctx, userID, id)
}
