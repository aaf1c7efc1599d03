package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vivamau/diet-tracker/models"
	"github.com/vivamau/diet-tracker/store"
)

const dateLayout = "2006-01-02"

type MealService struct {
	store *store.Store
}

func NewMealService(st *store.Store) *MealService {
	return &MealService{store: st}
}

// AddEntryInput is the body of POST /api/meals/:date/:mealType.
type AddEntryInput struct {
	FoodItemID string   `json:"foodItemId" binding:"required"`
	Quantity   *float64 `json:"quantity"`
}

// CopyMealInput addresses the source slot of a copy operation.
type CopyMealInput struct {
	SourceDate     string `json:"sourceDate" binding:"required"`
	SourceMealType string `json:"sourceMealType" binding:"required"`
}

func validDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return validationError("invalid date, expected yyyy-MM-dd")
	}
	return nil
}

// GetDailyLog returns the log for a date, synthesizing an empty one for
// untouched dates. Reads never persist the synthesized log.
func (s *MealService) GetDailyLog(date string) (*models.DailyMealLog, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	log := models.NewDailyMealLog()
	err := s.store.View(func(doc *models.Document) error {
		if existing := doc.Meals[date]; existing != nil {
			log = existing
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

// AddEntry appends a new entry to the tail of the addressed slot. Quantity
// defaults to 1. The referenced food item is not checked for existence;
// unresolvable references degrade to zero at aggregation time.
func (s *MealService) AddEntry(date, mealType string, in AddEntryInput) (*models.MealEntry, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	if !models.ValidMealType(mealType) {
		return nil, validationError("invalid meal type")
	}
	quantity := 1.0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity <= 0 {
		return nil, validationError("quantity must be positive")
	}

	entry := &models.MealEntry{
		ID:         uuid.New().String(),
		FoodItemID: in.FoodItemID,
		Quantity:   quantity,
		AddedAt:    time.Now().UTC(),
	}
	err := s.store.Update(func(doc *models.Document) error {
		log := doc.Meals[date]
		if log == nil {
			log = models.NewDailyMealLog()
			doc.Meals[date] = log
		}
		slot := log.Slot(mealType)
		*slot = append(*slot, *entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveEntry deletes the entry with the given ID from the addressed slot,
// preserving the order of the remaining entries.
func (s *MealService) RemoveEntry(date, mealType, entryID string) error {
	if err := validDate(date); err != nil {
		return err
	}
	if !models.ValidMealType(mealType) {
		return validationError("invalid meal type")
	}
	return s.store.Update(func(doc *models.Document) error {
		log := doc.Meals[date]
		if log == nil {
			return notFoundError("meal entry not found")
		}
		slot := log.Slot(mealType)
		for i, entry := range *slot {
			if entry.ID == entryID {
				*slot = append((*slot)[:i], (*slot)[i+1:]...)
				return nil
			}
		}
		return notFoundError("meal entry not found")
	})
}

// CopyMeal re-creates every entry of the source slot in the destination
// slot through the normal add path: new IDs, new timestamps, same food
// reference and quantity. Copying is best-effort per entry; a failure
// mid-way leaves already-copied entries in place.
func (s *MealService) CopyMeal(dstDate, dstMealType string, in CopyMealInput) ([]models.MealEntry, error) {
	if err := validDate(dstDate); err != nil {
		return nil, err
	}
	if err := validDate(in.SourceDate); err != nil {
		return nil, err
	}
	if !models.ValidMealType(dstMealType) || !models.ValidMealType(in.SourceMealType) {
		return nil, validationError("invalid meal type")
	}

	source, err := s.GetDailyLog(in.SourceDate)
	if err != nil {
		return nil, err
	}
	entries := *source.Slot(in.SourceMealType)

	copied := make([]models.MealEntry, 0, len(entries))
	for _, entry := range entries {
		quantity := entry.Quantity
		created, err := s.AddEntry(dstDate, dstMealType, AddEntryInput{
			FoodItemID: entry.FoodItemID,
			Quantity:   &quantity,
		})
		if err != nil {
			slog.Warn("skipping meal entry during copy",
				"sourceDate", in.SourceDate, "entryId", entry.ID, "error", err)
			continue
		}
		copied = append(copied, *created)
	}
	return copied, nil
}

// ExportDiary writes the whole diary as CSV, dates ascending, slots in
// display order. Entries whose food item no longer exists are skipped.
func (s *MealService) ExportDiary(w io.Writer) error {
	return s.store.View(func(doc *models.Document) error {
		dates := make([]string, 0, len(doc.Meals))
		for date := range doc.Meals {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		cw := csv.NewWriter(w)
		header := []string{"Date", "Meal", "Food", "Quantity", "Unit", "Calories", "Proteins", "Carbohydrates", "Fat"}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}

		for _, date := range dates {
			log := doc.Meals[date]
			for _, mealType := range models.MealTypes {
				for _, entry := range *log.Slot(mealType) {
					item := doc.FoodItems[entry.FoodItemID]
					if item == nil {
						continue
					}
					var totals MacroTotals
					totals.Add(item, entry.Quantity)
					rounded := totals.Rounded()
					row := []string{
						date,
						mealType,
						item.Name,
						formatNumber(entry.Quantity),
						item.Unit,
						formatNumber(rounded.Calories),
						formatNumber(rounded.Proteins),
						formatNumber(rounded.Carbohydrates),
						formatNumber(rounded.Fat),
					}
					if err := cw.Write(row); err != nil {
						return fmt.Errorf("failed to write CSV: %w", err)
					}
				}
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
