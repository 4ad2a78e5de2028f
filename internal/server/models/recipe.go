package models

import "time"

// Recipe is a user-owned recipe row. Optional columns are pointers so that
// an update with the field omitted stores NULL (full-row replace semantics).
type Recipe struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	Ingredients   string    `json:"ingredients"`
	Instructions  string    `json:"instructions"`
	PrepTime      *int      `json:"prep_time,omitempty"`
	CookTime      *int      `json:"cook_time,omitempty"`
	Servings      *int      `json:"servings,omitempty"`
	Difficulty    *string   `json:"difficulty,omitempty"`
	Cuisine       *string   `json:"cuisine,omitempty"`
	Tags          *string   `json:"tags,omitempty"`
	NutritionInfo *string   `json:"nutrition_info,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
