package models

// Document is the full persisted state: one flat JSON file with a top-level
// key per entity collection. Meals and weight entries are keyed by
// yyyy-MM-dd date strings, food items by ID.
type Document struct {
	Meals         map[string]*DailyMealLog `json:"meals"`
	FoodItems     map[string]*FoodItem     `json:"foodItems"`
	UserProfile   *UserProfile             `json:"userProfile"`
	WeightEntries map[string]*WeightEntry  `json:"weightEntries"`
}

func NewDocument() *Document {
	return &Document{
		Meals:         map[string]*DailyMealLog{},
		FoodItems:     map[string]*FoodItem{},
		WeightEntries: map[string]*WeightEntry{},
	}
}

// Normalize repairs holes left by hand-edited or older documents: nil maps
// and nil meal slots.
func (d *Document) Normalize() {
	if d.Meals == nil {
		d.Meals = map[string]*DailyMealLog{}
	}
	if d.FoodItems == nil {
		d.FoodItems = map[string]*FoodItem{}
	}
	if d.WeightEntries == nil {
		d.WeightEntries = map[string]*WeightEntry{}
	}
	for _, log := range d.Meals {
		if log != nil {
			log.Normalize()
		}
	}
}
