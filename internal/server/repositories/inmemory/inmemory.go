// Package inmemory implements RepositoryManager over plain maps. It mirrors
// the SQL repositories' contracts (owner scoping, NotFound on zero matches,
// pantry ordering) and backs service and HTTP tests that do not need a
// running PostgreSQL.
package inmemory

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/dbx"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/pantry"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/users"
)

type Manager struct {
	db      *sql.DB
	users   *userRepo
	recipes *recipeRepo
	pantry  *pantryRepo
}

// NewManager builds an in-memory manager. The db handle is only used to
// satisfy Conn() for dbx.WithTx; any open database works (tests pass an
// in-memory sqlite).
func NewManager(db *sql.DB) *Manager {
	return &Manager{
		db:      db,
		users:   &userRepo{byID: map[int64]*models.User{}},
		recipes: &recipeRepo{byID: map[int64]*models.Recipe{}},
		pantry:  &pantryRepo{byID: map[int64]*models.PantryItem{}},
	}
}

var _ repomanager.RepositoryManager = (*Manager)(nil)

func (m *Manager) Conn() *sql.DB                       { return m.db }
func (m *Manager) RunMigrations(context.Context) error { return nil }
func (m *Manager) Users(dbx.DBTX) users.Repository     { return m.users }
func (m *Manager) Recipes(dbx.DBTX) recipes.Repository { return m.recipes }
func (m *Manager) Pantry(dbx.DBTX) pantry.Repository   { return m.pantry }

type userRepo struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*models.User
}

func (r *userRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, fmt.Errorf("%w: email is taken", common.ErrorAlreadyExists)
		}
	}

	r.seq++
	user.ID = r.seq
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.byID[user.ID] = &clone
	return user, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	clone := *u
	return &clone, nil
}

type recipeRepo struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*models.Recipe
}

func (r *recipeRepo) List(_ context.Context, userID int64) ([]*models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*models.Recipe{}
	for _, rec := range r.byID {
		if rec.UserID == userID {
			clone := *rec
			result = append(result, &clone)
		}
	}
	// newest first, like the SQL ORDER BY created_at DESC
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *recipeRepo) GetByID(_ context.Context, userID, id int64) (*models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok || rec.UserID != userID {
		return nil, common.ErrorNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *recipeRepo) Create(_ context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	recipe.ID = r.seq
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = recipe.CreatedAt
	clone := *recipe
	r.byID[recipe.ID] = &clone
	return recipe, nil
}

func (r *recipeRepo) Update(_ context.Context, recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[recipe.ID]
	if !ok || existing.UserID != recipe.UserID {
		return common.ErrorNotFound
	}
	recipe.CreatedAt = existing.CreatedAt
	recipe.UpdatedAt = time.Now()
	clone := *recipe
	r.byID[recipe.ID] = &clone
	return nil
}

func (r *recipeRepo) Delete(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok || existing.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *recipeRepo) SetImageKey(_ context.Context, userID, id int64, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok || existing.UserID != userID {
		return common.ErrorNotFound
	}
	existing.ImageURL = &key
	existing.UpdatedAt = time.Now()
	return nil
}

type pantryRepo struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*models.PantryItem
}

func (r *pantryRepo) List(_ context.Context, userID int64) ([]*models.PantryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*models.PantryItem{}
	for _, item := range r.byID {
		if item.UserID == userID {
			clone := *item
			result = append(result, &clone)
		}
	}
	// expiry ascending, undated rows last, id as tiebreaker; same contract
	// as the SQL ORDER BY expiry_date ASC NULLS LAST, id ASC
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch {
		case a.ExpiryDate == nil && b.ExpiryDate == nil:
			return a.ID < b.ID
		case a.ExpiryDate == nil:
			return false
		case b.ExpiryDate == nil:
			return true
		case a.ExpiryDate.Time.Equal(b.ExpiryDate.Time):
			return a.ID < b.ID
		default:
			return a.ExpiryDate.Time.Before(b.ExpiryDate.Time)
		}
	})
	return result, nil
}

func (r *pantryRepo) GetByID(_ context.Context, userID, id int64) (*models.PantryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok || item.UserID != userID {
		return nil, common.ErrorNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *pantryRepo) Create(_ context.Context, item *models.PantryItem) (*models.PantryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	item.ID = r.seq
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	clone := *item
	r.byID[item.ID] = &clone
	return item, nil
}

func (r *pantryRepo) Update(_ context.Context, item *models.PantryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[item.ID]
	if !ok || existing.UserID != item.UserID {
		return common.ErrorNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	clone := *item
	r.byID[item.ID] = &clone
	return nil
}

func (r *pantryRepo) Delete(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok || existing.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}
