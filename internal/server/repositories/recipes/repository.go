package recipes

import (
	"context"

	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

// Repository is the owner-scoped recipe store. Every method that takes an id
// also takes the caller's userID; a row that exists but belongs to another
// user is reported as common.ErrorNotFound, indistinguishable from a row
// that does not exist at all.
type Repository interface {
	List(ctx context.Context, userID int64) ([]*models.Recipe, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, userID, id int64) error
	SetImageKey(ctx context.Context, userID, id int64, key string) error
}
