// Package api is the CLI's view of the meal-planner REST API. The Client
// interface mirrors the server's endpoints; HTTPClient implements it over
// plain JSON requests with a bearer token.
package api

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthResult is the token and account view that register and login return.
type AuthResult struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

type Client interface {
	Register(ctx context.Context, email, password, name string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context) (*models.PublicUser, error)
	Health(ctx context.Context) error

	ListRecipes(ctx context.Context) ([]*models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, recipe *models.Recipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	IssueImageUploadURL(ctx context.Context, recipeID int64) (string, error)
	ResolveImageURL(ctx context.Context, recipeID int64) (string, error)

	ListPantry(ctx context.Context) ([]*models.PantryItem, error)
	GetPantryItem(ctx context.Context, id int64) (*models.PantryItem, error)
	CreatePantryItem(ctx context.Context, item *models.PantryItem) (*models.PantryItem, error)
	UpdatePantryItem(ctx context.Context, id int64, item *models.PantryItem) (*models.PantryItem, error)
	DeletePantryItem(ctx context.Context, id int64) error

	SetToken(token string)
}
