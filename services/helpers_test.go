package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivamau/diet-tracker/models"
	"github.com/vivamau/diet-tracker/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "db.json"))
}

func f64(v float64) *float64 { return &v }

func mustCreateFood(t *testing.T, svc *FoodService, in FoodItemInput) *models.FoodItem {
	t.Helper()
	item, err := svc.Create(in)
	require.NoError(t, err)
	return item
}

func riceInput() FoodItemInput {
	return FoodItemInput{
		Name:          "Rice",
		Calories:      f64(130),
		Proteins:      2.7,
		Carbohydrates: 28,
		Fat:           0.3,
	}
}
