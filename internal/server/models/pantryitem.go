package models

import "time"

// PantryItem is a user-owned pantry inventory row. ExpiryDate is nil when
// the item has no expiry; such rows sort after dated ones in listings.
type PantryItem struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Category   *string   `json:"category,omitempty"`
	Quantity   *float64  `json:"quantity,omitempty"`
	Unit       *string   `json:"unit,omitempty"`
	ExpiryDate *Date     `json:"expiry_date,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
