package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/mealplanner/internal/client/api"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
	"golang.org/x/sync/errgroup"
)

// ExpiringSoonWindow is how far ahead the dashboard looks for pantry items
// about to expire.
const ExpiringSoonWindow = 7 * 24 * time.Hour

// Dashboard is the combined view the CLI shows after login.
type Dashboard struct {
	Recipes      []*models.Recipe
	Pantry       []*models.PantryItem
	ExpiringSoon []*models.PantryItem
}

// PlannerService assembles the dashboard from the recipe and pantry
// endpoints.
type PlannerService struct {
	client api.Client
}

func NewPlannerService(client api.Client) *PlannerService {
	return &PlannerService{client: client}
}

// Dashboard fetches recipes and pantry items concurrently and derives the
// expiring-soon list locally.
func (s *PlannerService) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	d := &Dashboard{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recipes, err := s.client.ListRecipes(ctx)
		if err != nil {
			return err
		}
		d.Recipes = recipes
		return nil
	})
	g.Go(func() error {
		items, err := s.client.ListPantry(ctx)
		if err != nil {
			return err
		}
		d.Pantry = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.ExpiringSoon = ExpiringSoon(d.Pantry, now)
	return d, nil
}

// ExpiringSoon filters items whose expiry date falls inside the window
// [today, today+7d], both ends inclusive. Items already expired or without
// an expiry date are left out. The input order is preserved.
func ExpiringSoon(items []*models.PantryItem, now time.Time) []*models.PantryItem {
	today := models.DateOf(now).Time
	limit := today.Add(ExpiringSoonWindow)

	result := []*models.PantryItem{}
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}
		d := item.ExpiryDate.Time
		if d.Before(today) || d.After(limit) {
			continue
		}
		result = append(result, item)
	}
	return result
}
