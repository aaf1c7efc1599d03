package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vivamau/diet-tracker/models"
	"github.com/vivamau/diet-tracker/store"
	"github.com/vivamau/diet-tracker/utils"
)

type WeightService struct {
	store *store.Store
}

func NewWeightService(st *store.Store) *WeightService {
	return &WeightService{store: st}
}

// WeightInput is the body of POST /api/user/weight.
type WeightInput struct {
	Date   string   `json:"date" binding:"required"`
	Weight *float64 `json:"weight" binding:"required"`
	Time   string   `json:"time"`
}

// WeightStats summarizes the weight trend; BMI is included when the
// profile carries a height.
type WeightStats struct {
	CurrentWeight float64  `json:"currentWeight"`
	StartWeight   float64  `json:"startWeight"`
	TotalChange   float64  `json:"totalChange"`
	RecentChange  float64  `json:"recentChange"`
	Entries       int      `json:"entries"`
	BMI           *float64 `json:"bmi,omitempty"`
	BMICategory   string   `json:"bmiCategory,omitempty"`
}

// List returns all entries sorted by date ascending.
func (s *WeightService) List() ([]*models.WeightEntry, error) {
	var entries []*models.WeightEntry
	err := s.store.View(func(doc *models.Document) error {
		entries = make([]*models.WeightEntry, 0, len(doc.WeightEntries))
		for _, entry := range doc.WeightEntries {
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

// Upsert writes the entry for its date, replacing any existing one. A
// fresh ID and creation timestamp are assigned on every write.
func (s *WeightService) Upsert(in WeightInput) (*models.WeightEntry, error) {
	if err := validDate(in.Date); err != nil {
		return nil, err
	}
	if in.Weight == nil || *in.Weight <= 0 {
		return nil, validationError("weight must be positive")
	}

	entry := &models.WeightEntry{
		ID:        uuid.New().String(),
		Date:      in.Date,
		Weight:    *in.Weight,
		Time:      in.Time,
		CreatedAt: time.Now().UTC(),
	}
	err := s.store.Update(func(doc *models.Document) error {
		doc.WeightEntries[in.Date] = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *WeightService) Delete(date string) error {
	return s.store.Update(func(doc *models.Document) error {
		if doc.WeightEntries[date] == nil {
			return notFoundError("weight entry not found")
		}
		delete(doc.WeightEntries, date)
		return nil
	})
}

// Stats derives the weight trend from the recorded entries.
func (s *WeightService) Stats() (*WeightStats, error) {
	var (
		entries []*models.WeightEntry
		height  *float64
	)
	err := s.store.View(func(doc *models.Document) error {
		entries = make([]*models.WeightEntry, 0, len(doc.WeightEntries))
		for _, entry := range doc.WeightEntries {
			entries = append(entries, entry)
		}
		if doc.UserProfile != nil {
			height = doc.UserProfile.Height
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, notFoundError("no weight entries recorded")
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	first := entries[0]
	last := entries[len(entries)-1]
	stats := &WeightStats{
		CurrentWeight: last.Weight,
		StartWeight:   first.Weight,
		TotalChange:   last.Weight - first.Weight,
		Entries:       len(entries),
	}
	if len(entries) > 1 {
		stats.RecentChange = last.Weight - entries[len(entries)-2].Weight
	}

	if height != nil {
		if bmi, err := utils.CalculateBMI(*height, last.Weight); err == nil {
			stats.BMI = &bmi
			stats.BMICategory = utils.BMICategory(bmi)
		}
	}
	return stats, nil
}
