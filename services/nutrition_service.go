package services

import (
	"math"

	"github.com/vivamau/diet-tracker/models"
	"github.com/vivamau/diet-tracker/store"
)

// MacroTotals accumulates scaled nutrition values. Totals are always
// computed from raw food-item values; rounding happens once, for display.
type MacroTotals struct {
	Calories      float64 `json:"calories"`
	Proteins      float64 `json:"proteins"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// Add accumulates one entry's contribution: macro * quantity / 100, the
// food item's values being per 100 basis units.
func (t *MacroTotals) Add(item *models.FoodItem, quantity float64) {
	factor := quantity / 100
	t.Calories += item.Calories * factor
	t.Proteins += item.Proteins * factor
	t.Carbohydrates += item.Carbohydrates * factor
	t.Fat += item.Fat * factor
}

// Rounded applies the display policy: calories to the nearest integer,
// gram values to one decimal place, halves away from zero.
func (t MacroTotals) Rounded() MacroTotals {
	return MacroTotals{
		Calories:      math.Round(t.Calories),
		Proteins:      roundGrams(t.Proteins),
		Carbohydrates: roundGrams(t.Carbohydrates),
		Fat:           roundGrams(t.Fat),
	}
}

func roundGrams(v float64) float64 {
	return math.Round(v*10) / 10
}

// TotalsForEntries sums the contributions of the given entries. Entries
// whose food item is missing from the lookup contribute nothing; the rest
// of the aggregation proceeds.
func TotalsForEntries(entries []models.MealEntry, items map[string]*models.FoodItem) MacroTotals {
	var totals MacroTotals
	for _, entry := range entries {
		item := items[entry.FoodItemID]
		if item == nil {
			continue
		}
		totals.Add(item, entry.Quantity)
	}
	return totals
}

// DayTotals sums all four slots of a log from raw values.
func DayTotals(log *models.DailyMealLog, items map[string]*models.FoodItem) MacroTotals {
	var totals MacroTotals
	for _, mealType := range models.MealTypes {
		slot := TotalsForEntries(*log.Slot(mealType), items)
		totals.Calories += slot.Calories
		totals.Proteins += slot.Proteins
		totals.Carbohydrates += slot.Carbohydrates
		totals.Fat += slot.Fat
	}
	return totals
}

// MacroProgress compares consumed against the daily target for one macro.
type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Target   float64 `json:"target"`
	Percent  float64 `json:"percent"`
}

// DailySummary is the aggregate view of one day against the profile targets.
type DailySummary struct {
	Date     string                   `json:"date"`
	Totals   MacroTotals              `json:"totals"`
	PerMeal  map[string]MacroTotals   `json:"perMeal"`
	Progress map[string]MacroProgress `json:"progress"`
}

type NutritionService struct {
	store *store.Store
}

func NewNutritionService(st *store.Store) *NutritionService {
	return &NutritionService{store: st}
}

// Summary aggregates the given date and compares it to the profile's daily
// targets (defaults when no profile was ever saved).
func (s *NutritionService) Summary(date string) (*DailySummary, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}

	summary := &DailySummary{Date: date}
	err := s.store.View(func(doc *models.Document) error {
		log := doc.Meals[date]
		if log == nil {
			log = models.NewDailyMealLog()
		}

		perMeal := make(map[string]MacroTotals, len(models.MealTypes))
		for _, mealType := range models.MealTypes {
			perMeal[mealType] = TotalsForEntries(*log.Slot(mealType), doc.FoodItems).Rounded()
		}
		totals := DayTotals(log, doc.FoodItems)

		targets := models.DefaultDailyTargets()
		if doc.UserProfile != nil {
			targets = doc.UserProfile.DailyTargets
		}

		summary.Totals = totals.Rounded()
		summary.PerMeal = perMeal
		summary.Progress = map[string]MacroProgress{
			"calories":      progress(totals.Calories, targets.Calories),
			"proteins":      progress(totals.Proteins, targets.Proteins),
			"carbohydrates": progress(totals.Carbohydrates, targets.Carbohydrates),
			"fat":           progress(totals.Fat, targets.Fat),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func progress(consumed, target float64) MacroProgress {
	p := 0.0
	if target > 0 {
		p = consumed / target
		if p > 1 {
			p = 1
		}
	}
	return MacroProgress{Consumed: consumed, Target: target, Percent: p}
}
