// Package recipes provides the PostgreSQL-backed, owner-scoped repository
// for recipe rows.
package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/dbx"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

// PostgresRepository implements recipe storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const recipeColumns = `id, user_id, title, description, ingredients, instructions,
		prep_time, cook_time, servings, difficulty, cuisine, tags,
		nutrition_info, image_url, created_at, updated_at`

func scanRecipe(row interface{ Scan(dest ...any) error }, r *models.Recipe) error {
	return row.Scan(
		&r.ID, &r.UserID, &r.Title, &r.Description, &r.Ingredients, &r.Instructions,
		&r.PrepTime, &r.CookTime, &r.Servings, &r.Difficulty, &r.Cuisine, &r.Tags,
		&r.NutritionInfo, &r.ImageURL, &r.CreatedAt, &r.UpdatedAt)
}

func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]*models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Recipe{}
	for rows.Next() {
		var item models.Recipe
		if err := scanRecipe(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id int64) (*models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1 AND user_id = $2`

	recipe := &models.Recipe{}
	err := scanRecipe(r.db.QueryRowContext(ctx, query, id, userID), recipe)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	query := `
		INSERT INTO recipes (user_id, title, description, ingredients, instructions,
			prep_time, cook_time, servings, difficulty, cuisine, tags, nutrition_info, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		recipe.UserID, recipe.Title, recipe.Description, recipe.Ingredients, recipe.Instructions,
		recipe.PrepTime, recipe.CookTime, recipe.Servings, recipe.Difficulty, recipe.Cuisine,
		recipe.Tags, recipe.NutritionInfo, recipe.ImageURL).
		Scan(&recipe.ID, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

// Update replaces every mutable column with the values in recipe, including
// columns the caller left at their zero value. This is deliberate replace
// semantics, not a partial patch.
func (r *PostgresRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	query := `
		UPDATE recipes
		SET title = $1, description = $2, ingredients = $3, instructions = $4,
			prep_time = $5, cook_time = $6, servings = $7, difficulty = $8,
			cuisine = $9, tags = $10, nutrition_info = $11, image_url = $12,
			updated_at = now()
		WHERE id = $13 AND user_id = $14
	`
	res, err := r.db.ExecContext(ctx, query,
		recipe.Title, recipe.Description, recipe.Ingredients, recipe.Instructions,
		recipe.PrepTime, recipe.CookTime, recipe.Servings, recipe.Difficulty,
		recipe.Cuisine, recipe.Tags, recipe.NutritionInfo, recipe.ImageURL,
		recipe.ID, recipe.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

// SetImageKey stores the object-storage key of the recipe's image.
func (r *PostgresRepository) SetImageKey(ctx context.Context, userID, id int64, key string) error {
	query := `UPDATE recipes SET image_url = $1, updated_at = now() WHERE id = $2 AND user_id = $3`
	res, err := r.db.ExecContext(ctx, query, key, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

func checkOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
