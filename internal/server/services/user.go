// Package services contains the application services of the server: account
// and credential handling, owner-scoped recipe and pantry CRUD, and recipe
// image storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/dbx"
	"github.com/dmitrijs2005/mealplanner/internal/server/auth"
	"github.com/dmitrijs2005/mealplanner/internal/server/config"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/repomanager"
)

// AuthResult is what register and login hand back to the transport layer:
// a signed bearer token and the public view of the account.
type AuthResult struct {
	Token string
	User  *models.PublicUser
}

type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int
}

func NewUserService(rm repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            rm.Conn(),
		repomanager:   rm,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BcryptCost,
	}
}

// Register validates the input, hashes the password and creates the account.
// The pre-insert uniqueness check gives duplicate registrations a clean
// error; two registrations racing past it are settled by the unique index on
// email, which the repository reports as ErrorAlreadyExists too.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrorValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: hash, FirstName: &name}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepo := s.repomanager.Users(tx)

		_, err := userRepo.GetByEmail(ctx, email)
		if err == nil {
			return fmt.Errorf("%w: user already exists", common.ErrorAlreadyExists)
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		user, err = userRepo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Login verifies the credentials and issues a fresh token. An unknown email
// and a wrong password return the same error value so responses cannot be
// used to probe which accounts exist.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	userRepo := s.repomanager.Users(s.db)

	user, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// VerifyToken resolves a bearer token to the user id it was issued for.
func (s *UserService) VerifyToken(token string) (int64, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// Profile returns the public view of an account. The row may be gone even
// though the token is still valid; that surfaces as common.ErrorNotFound.
func (s *UserService) Profile(ctx context.Context, userID int64) (*models.PublicUser, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}
