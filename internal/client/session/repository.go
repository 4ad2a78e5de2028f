// Package session persists the CLI's login session (token and account email)
// in a local sqlite database, so a user stays signed in between runs.
package session

import "context"

// Well-known session keys.
const (
	KeyToken = "token"
	KeyEmail = "email"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
