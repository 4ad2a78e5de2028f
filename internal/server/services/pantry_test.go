package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func datePtr(t time.Time) *models.Date {
	d := models.DateOf(t)
	return &d
}

func TestPantryCreate_RequiresName(t *testing.T) {
	s := NewPantryService(newTestManager(t))

	_, err := s.Create(context.Background(), 1, &models.PantryItem{})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestPantryList_OrderedByExpiryUndatedLast(t *testing.T) {
	s := NewPantryService(newTestManager(t))
	ctx := context.Background()
	now := time.Now()

	_, err := s.Create(ctx, 1, &models.PantryItem{Name: "far", ExpiryDate: datePtr(now.AddDate(0, 0, 30))})
	require.NoError(t, err)
	_, err = s.Create(ctx, 1, &models.PantryItem{Name: "undated"})
	require.NoError(t, err)
	_, err = s.Create(ctx, 1, &models.PantryItem{Name: "near", ExpiryDate: datePtr(now.AddDate(0, 0, 2))})
	require.NoError(t, err)

	items, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "near", items[0].Name)
	require.Equal(t, "far", items[1].Name)
	require.Equal(t, "undated", items[2].Name)
}

func TestPantryUpdate_FullReplaceClearsNotes(t *testing.T) {
	s := NewPantryService(newTestManager(t))
	ctx := context.Background()

	notes := "open since monday"
	created, err := s.Create(ctx, 1, &models.PantryItem{Name: "milk", Notes: &notes})
	require.NoError(t, err)

	// update without notes: replace semantics wipe the old value
	err = s.Update(ctx, 1, created.ID, &models.PantryItem{Name: "milk"})
	require.NoError(t, err)

	got, err := s.Get(ctx, 1, created.ID)
	require.NoError(t, err)
	require.Nil(t, got.Notes)
}

func TestPantryDelete_OtherUsersRowIsNotFound(t *testing.T) {
	s := NewPantryService(newTestManager(t))
	ctx := context.Background()

	created, err := s.Create(ctx, 1, &models.PantryItem{Name: "milk"})
	require.NoError(t, err)

	err = s.Delete(ctx, 2, created.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
