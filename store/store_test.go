package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivamau/diet-tracker/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "db.json"))
}

func TestViewMissingFileYieldsEmptyDocument(t *testing.T) {
	st := newTestStore(t)

	err := st.View(func(doc *models.Document) error {
		assert.Empty(t, doc.FoodItems)
		assert.Empty(t, doc.Meals)
		assert.Empty(t, doc.WeightEntries)
		assert.Nil(t, doc.UserProfile)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdatePersistsAcrossLoads(t *testing.T) {
	st := newTestStore(t)

	err := st.Update(func(doc *models.Document) error {
		doc.FoodItems["abc"] = &models.FoodItem{ID: "abc", Name: "Rice", Calories: 130}
		return nil
	})
	require.NoError(t, err)

	err = st.View(func(doc *models.Document) error {
		require.NotNil(t, doc.FoodItems["abc"])
		assert.Equal(t, "Rice", doc.FoodItems["abc"].Name)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateErrorWritesNothing(t *testing.T) {
	st := newTestStore(t)

	err := st.Update(func(doc *models.Document) error {
		doc.FoodItems["abc"] = &models.FoodItem{ID: "abc"}
		return assert.AnError
	})
	require.Error(t, err)

	err = st.View(func(doc *models.Document) error {
		assert.Empty(t, doc.FoodItems)
		return nil
	})
	require.NoError(t, err)
}

func TestLoadNormalizesSparseDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	// A hand-edited file with missing collections and a meal log with
	// missing slots.
	raw := `{"meals": {"2024-03-01": {"breakfast": [{"id": "e1", "foodItemId": "f1", "quantity": 100}]}}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	st := New(path)
	err := st.View(func(doc *models.Document) error {
		require.NotNil(t, doc.FoodItems)
		require.NotNil(t, doc.WeightEntries)
		log := doc.Meals["2024-03-01"]
		require.NotNil(t, log)
		assert.Len(t, log.Breakfast, 1)
		assert.NotNil(t, log.Lunch)
		assert.NotNil(t, log.Dinner)
		assert.NotNil(t, log.Snacks)
		return nil
	})
	require.NoError(t, err)
}

func TestLoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := New(path)
	err := st.View(func(doc *models.Document) error { return nil })
	require.Error(t, err)
}
