// Package models defines the persistent row types of the meal planner.
// JSON tags match the field names the original web client exchanged.
package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    *string   `json:"first_name,omitempty"`
	LastName     *string   `json:"last_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the user view returned by auth endpoints. The password hash
// never leaves the service layer.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *User) Public() *PublicUser {
	name := ""
	if u.FirstName != nil {
		name = *u.FirstName
	}
	return &PublicUser{ID: u.ID, Email: u.Email, Name: name}
}
