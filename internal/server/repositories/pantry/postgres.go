// Package pantry provides the PostgreSQL-backed, owner-scoped repository
// for pantry inventory rows.
package pantry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/dbx"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

// PostgresRepository implements pantry storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `id, user_id, name, category, quantity, unit, expiry_date,
		location, notes, created_at, updated_at`

func scanItem(row interface{ Scan(dest ...any) error }, i *models.PantryItem) error {
	return row.Scan(
		&i.ID, &i.UserID, &i.Name, &i.Category, &i.Quantity, &i.Unit,
		&i.ExpiryDate, &i.Location, &i.Notes, &i.CreatedAt, &i.UpdatedAt)
}

// List orders by expiry_date ascending with NULLS LAST so that undated items
// always trail dated ones, deterministically.
func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]*models.PantryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM pantry_items
		WHERE user_id = $1
		ORDER BY expiry_date ASC NULLS LAST, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.PantryItem{}
	for rows.Next() {
		var item models.PantryItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id int64) (*models.PantryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM pantry_items WHERE id = $1 AND user_id = $2`

	item := &models.PantryItem{}
	err := scanItem(r.db.QueryRowContext(ctx, query, id, userID), item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.PantryItem) (*models.PantryItem, error) {
	query := `
		INSERT INTO pantry_items (user_id, name, category, quantity, unit, expiry_date, location, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.Name, item.Category, item.Quantity, item.Unit,
		item.ExpiryDate, item.Location, item.Notes).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// Update replaces every mutable column, including ones the caller omitted.
// An update without notes therefore clears any previous notes value.
func (r *PostgresRepository) Update(ctx context.Context, item *models.PantryItem) error {
	query := `
		UPDATE pantry_items
		SET name = $1, category = $2, quantity = $3, unit = $4,
			expiry_date = $5, location = $6, notes = $7, updated_at = now()
		WHERE id = $8 AND user_id = $9
	`
	res, err := r.db.ExecContext(ctx, query,
		item.Name, item.Category, item.Quantity, item.Unit,
		item.ExpiryDate, item.Location, item.Notes,
		item.ID, item.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pantry_items WHERE id = $1 AND user_id = $2`, id, userID)
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
