package pantry

import (
	"context"

	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

// Repository is the owner-scoped pantry store. As with recipes, a row owned
// by another user is indistinguishable from a missing row: both are
// common.ErrorNotFound.
type Repository interface {
	// List returns the caller's items ordered by expiry date ascending;
	// items without an expiry date sort last.
	List(ctx context.Context, userID int64) ([]*models.PantryItem, error)
	GetByID(ctx context.Context, userID, id int64) (*models.PantryItem, error)
	Create(ctx context.Context, item *models.PantryItem) (*models.PantryItem, error)
	Update(ctx context.Context, item *models.PantryItem) error
	Delete(ctx context.Context, userID, id int64) error
}
