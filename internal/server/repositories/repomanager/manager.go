// Package repomanager wires the per-entity repositories to one database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mealplanner/internal/dbx"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/pantry"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/users"
)

// RepositoryManager produces repositories bound to a DBTX, so services can
// run a repository either on the shared connection pool or inside a
// transaction started with dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Pantry(db dbx.DBTX) pantry.Repository
}
