// Package services implements the CLI-side application logic: session-backed
// authentication and the dashboard assembly.
package services

import (
	"context"

	"github.com/dmitrijs2005/mealplanner/internal/client/api"
	"github.com/dmitrijs2005/mealplanner/internal/client/session"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

// AuthService signs the user in and out and keeps the session database in
// step with the API client's token.
type AuthService struct {
	client  api.Client
	session session.Repository
}

func NewAuthService(client api.Client, sess session.Repository) *AuthService {
	return &AuthService{client: client, session: sess}
}

func (s *AuthService) persist(ctx context.Context, res *api.AuthResult) (*models.PublicUser, error) {
	s.client.SetToken(res.Token)
	if err := s.session.Set(ctx, session.KeyToken, res.Token); err != nil {
		return nil, err
	}
	if err := s.session.Set(ctx, session.KeyEmail, res.User.Email); err != nil {
		return nil, err
	}
	return res.User, nil
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.PublicUser, error) {
	res, err := s.client.Register(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, res)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, res)
}

// Restore loads a previously saved session, if any, and arms the client with
// its token. It returns the saved account email, or "" when signed out.
func (s *AuthService) Restore(ctx context.Context) (string, error) {
	token, err := s.session.Get(ctx, session.KeyToken)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}
	email, err := s.session.Get(ctx, session.KeyEmail)
	if err != nil {
		return "", err
	}
	s.client.SetToken(token)
	return email, nil
}

// Logout drops the saved session and the client's token.
func (s *AuthService) Logout(ctx context.Context) error {
	s.client.SetToken("")
	return s.session.Clear(ctx)
}
