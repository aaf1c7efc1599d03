package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vivamau/diet-tracker/models"
	"github.com/vivamau/diet-tracker/store"
)

type FoodService struct {
	store *store.Store
}

func NewFoodService(st *store.Store) *FoodService {
	return &FoodService{store: st}
}

// FoodItemInput carries the fields of a create request. Calories is a
// pointer so a missing value can be told apart from an explicit zero.
type FoodItemInput struct {
	Name          string   `json:"name" binding:"required"`
	Calories      *float64 `json:"calories" binding:"required"`
	Fat           float64  `json:"fat"`
	Carbohydrates float64  `json:"carbohydrates"`
	Proteins      float64  `json:"proteins"`
	Unit          string   `json:"unit"`
	Barcode       string   `json:"barcode"`
}

// FoodItemUpdate carries a partial update; only non-nil fields change.
type FoodItemUpdate struct {
	Name          *string  `json:"name"`
	Calories      *float64 `json:"calories"`
	Fat           *float64 `json:"fat"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Proteins      *float64 `json:"proteins"`
	Unit          *string  `json:"unit"`
	Barcode       *string  `json:"barcode"`
}

// List returns all food items sorted by name.
func (s *FoodService) List() ([]*models.FoodItem, error) {
	var items []*models.FoodItem
	err := s.store.View(func(doc *models.Document) error {
		items = make([]*models.FoodItem, 0, len(doc.FoodItems))
		for _, item := range doc.FoodItems {
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (s *FoodService) Get(id string) (*models.FoodItem, error) {
	var item *models.FoodItem
	err := s.store.View(func(doc *models.Document) error {
		item = doc.FoodItems[id]
		if item == nil {
			return notFoundError("food item not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodService) Create(in FoodItemInput) (*models.FoodItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationError("name and calories are required")
	}
	if in.Calories == nil {
		return nil, validationError("name and calories are required")
	}
	if *in.Calories < 0 || in.Fat < 0 || in.Carbohydrates < 0 || in.Proteins < 0 {
		return nil, validationError("nutrition values must not be negative")
	}

	unit := in.Unit
	if unit == "" {
		unit = "grams"
	}

	now := time.Now().UTC()
	item := &models.FoodItem{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Calories:      *in.Calories,
		Fat:           in.Fat,
		Carbohydrates: in.Carbohydrates,
		Proteins:      in.Proteins,
		Unit:          unit,
		Barcode:       in.Barcode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.store.Update(func(doc *models.Document) error {
		if err := checkBarcodeConflict(doc, item.Barcode, item.ID); err != nil {
			return err
		}
		doc.FoodItems[item.ID] = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodService) Update(id string, in FoodItemUpdate) (*models.FoodItem, error) {
	for _, v := range []*float64{in.Calories, in.Fat, in.Carbohydrates, in.Proteins} {
		if v != nil && *v < 0 {
			return nil, validationError("nutrition values must not be negative")
		}
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, validationError("name must not be empty")
	}

	var item *models.FoodItem
	err := s.store.Update(func(doc *models.Document) error {
		item = doc.FoodItems[id]
		if item == nil {
			return notFoundError("food item not found")
		}
		if in.Barcode != nil {
			if err := checkBarcodeConflict(doc, *in.Barcode, id); err != nil {
				return err
			}
			item.Barcode = *in.Barcode
		}
		if in.Name != nil {
			item.Name = *in.Name
		}
		if in.Calories != nil {
			item.Calories = *in.Calories
		}
		if in.Fat != nil {
			item.Fat = *in.Fat
		}
		if in.Carbohydrates != nil {
			item.Carbohydrates = *in.Carbohydrates
		}
		if in.Proteins != nil {
			item.Proteins = *in.Proteins
		}
		if in.Unit != nil {
			item.Unit = *in.Unit
		}
		item.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item. Meal entries referencing it are left in place;
// aggregation treats them as zero contribution.
func (s *FoodService) Delete(id string) error {
	return s.store.Update(func(doc *models.Document) error {
		if doc.FoodItems[id] == nil {
			return notFoundError("food item not found")
		}
		delete(doc.FoodItems, id)
		return nil
	})
}

// SearchByName does a case-insensitive substring match.
func (s *FoodService) SearchByName(query string) ([]*models.FoodItem, error) {
	items, err := s.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matches := make([]*models.FoodItem, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// GetByBarcode returns the item with the exact barcode, if any.
func (s *FoodService) GetByBarcode(barcode string) (*models.FoodItem, error) {
	if barcode == "" {
		return nil, validationError("barcode is required")
	}
	var item *models.FoodItem
	err := s.store.View(func(doc *models.Document) error {
		for _, candidate := range doc.FoodItems {
			if candidate.Barcode == barcode {
				item = candidate
				return nil
			}
		}
		return notFoundError("food item not found for this barcode")
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// checkBarcodeConflict enforces barcode uniqueness. An item may always keep
// its own barcode.
func checkBarcodeConflict(doc *models.Document, barcode, selfID string) error {
	if barcode == "" {
		return nil
	}
	for _, other := range doc.FoodItems {
		if other.ID != selfID && other.Barcode == barcode {
			return conflictError("food item with this barcode already exists")
		}
	}
	return nil
}
