package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivamau/diet-tracker/models"
)

func TestGetDailyLogForUntouchedDate(t *testing.T) {
	st := newTestStore(t)
	svc := NewMealService(st)

	log, err := svc.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Empty(t, log.Breakfast)
	assert.Empty(t, log.Lunch)
	assert.Empty(t, log.Dinner)
	assert.Empty(t, log.Snacks)
	assert.NotNil(t, log.Breakfast)

	// A plain read must not persist the synthesized log.
	err = st.View(func(doc *models.Document) error {
		assert.Empty(t, doc.Meals)
		return nil
	})
	require.NoError(t, err)
}

func TestGetDailyLogRejectsBadDate(t *testing.T) {
	svc := NewMealService(newTestStore(t))

	_, err := svc.GetDailyLog("01/03/2024")
	assert.True(t, IsValidation(err))
}

func TestAddEntry(t *testing.T) {
	svc := NewMealService(newTestStore(t))

	entry, err := svc.AddEntry("2024-03-01", models.MealLunch, AddEntryInput{FoodItemID: "food-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 1.0, entry.Quantity, "quantity defaults to 1")
	assert.False(t, entry.AddedAt.IsZero())

	log, err := svc.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	require.Len(t, log.Lunch, 1)
	assert.Equal(t, entry.ID, log.Lunch[0].ID)
}

func TestAddEntryValidation(t *testing.T) {
	svc := NewMealService(newTestStore(t))

	_, err := svc.AddEntry("2024-03-01", "brunch", AddEntryInput{FoodItemID: "food-1"})
	assert.True(t, IsValidation(err), "unknown meal type is rejected")

	_, err = svc.AddEntry("2024-03-01", models.MealLunch, AddEntryInput{FoodItemID: "food-1", Quantity: f64(0)})
	assert.True(t, IsValidation(err), "zero quantity is rejected")

	_, err = svc.AddEntry("2024-03-01", models.MealLunch, AddEntryInput{FoodItemID: "food-1", Quantity: f64(-5)})
	assert.True(t, IsValidation(err), "negative quantity is rejected")
}

func TestRemoveEntryPreservesOrder(t *testing.T) {
	svc := NewMealService(newTestStore(t))

	first, err := svc.AddEntry("2024-03-01", models.MealDinner, AddEntryInput{FoodItemID: "a"})
	require.NoError(t, err)
	second, err := svc.AddEntry("2024-03-01", models.MealDinner, AddEntryInput{FoodItemID: "b"})
	require.NoError(t, err)
	third, err := svc.AddEntry("2024-03-01", models.MealDinner, AddEntryInput{FoodItemID: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveEntry("2024-03-01", models.MealDinner, second.ID))

	log, err := svc.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	require.Len(t, log.Dinner, 2)
	assert.Equal(t, first.ID, log.Dinner[0].ID)
	assert.Equal(t, third.ID, log.Dinner[1].ID)
}

func TestRemoveEntryNotFoundLeavesSlotUnchanged(t *testing.T) {
	svc := NewMealService(newTestStore(t))

	entry, err := svc.AddEntry("2024-03-01", models.MealSnacks, AddEntryInput{FoodItemID: "a"})
	require.NoError(t, err)

	err = svc.RemoveEntry("2024-03-01", models.MealSnacks, "no-such-entry")
	assert.True(t, IsNotFound(err))

	// Wrong slot does not find the entry either.
	err = svc.RemoveEntry("2024-03-01", models.MealLunch, entry.ID)
	assert.True(t, IsNotFound(err))

	log, err := svc.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Len(t, log.Snacks, 1)
}

func TestCopyMealRecreatesEntries(t *testing.T) {
	svc := NewMealService(newTestStore(t))

	src1, err := svc.AddEntry("2024-03-01", models.MealLunch, AddEntryInput{FoodItemID: "a", Quantity: f64(150)})
	require.NoError(t, err)
	src2, err := svc.AddEntry("2024-03-01", models.MealLunch, AddEntryInput{FoodItemID: "b", Quantity: f64(80)})
	require.NoError(t, err)

	copied, err := svc.CopyMeal("2024-03-02", models.MealDinner, CopyMealInput{
		SourceDate:     "2024-03-01",
		SourceMealType: models.MealLunch,
	})
	require.NoError(t, err)
	require.Len(t, copied, 2)

	// New identity, same reference and quantity.
	assert.NotEqual(t, src1.ID, copied[0].ID)
	assert.Equal(t, src1.FoodItemID, copied[0].FoodItemID)
	assert.Equal(t, src1.Quantity, copied[0].Quantity)
	assert.Equal(t, src2.FoodItemID, copied[1].FoodItemID)

	// Source is untouched.
	source, err := svc.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Len(t, source.Lunch, 2)

	dest, err := svc.GetDailyLog("2024-03-02")
	require.NoError(t, err)
	assert.Len(t, dest.Dinner, 2)
}

func TestCopyMealFromEmptySlot(t *testing.T) {
	svc := NewMealService(newTestStore(t))

	copied, err := svc.CopyMeal("2024-03-02", models.MealLunch, CopyMealInput{
		SourceDate:     "2024-03-01",
		SourceMealType: models.MealBreakfast,
	})
	require.NoError(t, err)
	assert.Empty(t, copied)
}

func TestExportDiary(t *testing.T) {
	st := newTestStore(t)
	foods := NewFoodService(st)
	svc := NewMealService(st)

	rice := mustCreateFood(t, foods, riceInput())
	ghost := mustCreateFood(t, foods, FoodItemInput{Name: "Ghost", Calories: f64(500)})

	_, err := svc.AddEntry("2024-03-01", models.MealLunch, AddEntryInput{FoodItemID: rice.ID, Quantity: f64(150)})
	require.NoError(t, err)
	_, err = svc.AddEntry("2024-03-01", models.MealLunch, AddEntryInput{FoodItemID: ghost.ID, Quantity: f64(100)})
	require.NoError(t, err)
	require.NoError(t, foods.Delete(ghost.ID))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportDiary(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "header plus one row; the deleted food's entry is skipped")
	assert.Equal(t, "Date,Meal,Food,Quantity,Unit,Calories,Proteins,Carbohydrates,Fat", lines[0])
	// 0.3 fat × 1.5 lands just under 0.45 in float64, so display
	// rounding yields 0.4.
	assert.Equal(t, "2024-03-01,lunch,Rice,150,grams,195,4.1,42,0.4", lines[1])
}
