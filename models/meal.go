package models

import "time"

// Meal type names double as JSON keys of DailyMealLog.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnacks    = "snacks"
)

// MealTypes lists the four slots in display order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// MealEntry references a FoodItem by ID; quantity is in the food item's
// basis unit. Nutrition is never snapshotted here.
type MealEntry struct {
	ID         string    `json:"id"`
	FoodItemID string    `json:"foodItemId"`
	Quantity   float64   `json:"quantity"`
	AddedAt    time.Time `json:"addedAt"`
}

// DailyMealLog holds the entries of one calendar day. All four slots are
// present (possibly empty) once the day has been touched.
type DailyMealLog struct {
	Breakfast []MealEntry `json:"breakfast"`
	Lunch     []MealEntry `json:"lunch"`
	Dinner    []MealEntry `json:"dinner"`
	Snacks    []MealEntry `json:"snacks"`
}

func NewDailyMealLog() *DailyMealLog {
	return &DailyMealLog{
		Breakfast: []MealEntry{},
		Lunch:     []MealEntry{},
		Dinner:    []MealEntry{},
		Snacks:    []MealEntry{},
	}
}

func ValidMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks:
		return true
	}
	return false
}

// Slot returns a pointer to the slice backing the given meal type, or nil
// for an unknown meal type.
func (l *DailyMealLog) Slot(mealType string) *[]MealEntry {
	switch mealType {
	case MealBreakfast:
		return &l.Breakfast
	case MealLunch:
		return &l.Lunch
	case MealDinner:
		return &l.Dinner
	case MealSnacks:
		return &l.Snacks
	}
	return nil
}

// Normalize replaces nil slots with empty slices so a log always serializes
// as four arrays.
func (l *DailyMealLog) Normalize() {
	if l.Breakfast == nil {
		l.Breakfast = []MealEntry{}
	}
	if l.Lunch == nil {
		l.Lunch = []MealEntry{}
	}
	if l.Dinner == nil {
		l.Dinner = []MealEntry{}
	}
	if l.Snacks == nil {
		l.Snacks = []MealEntry{}
	}
}
