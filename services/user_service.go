package services

import (
	"time"

	"github.com/vivamau/diet-tracker/models"
	"github.com/vivamau/diet-tracker/store"
)

type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// ProfileInput is the body of PUT /api/user/profile. The profile is
// replaced wholesale; absent or non-positive targets fall back to defaults.
type ProfileInput struct {
	Name          string             `json:"name"`
	DailyTargets  *DailyTargetsInput `json:"dailyTargets"`
	InitialWeight *float64           `json:"initialWeight"`
	Height        *float64           `json:"height"`
}

type DailyTargetsInput struct {
	Calories      *float64 `json:"calories"`
	Proteins      *float64 `json:"proteins"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Fat           *float64 `json:"fat"`
}

// GetProfile returns the saved profile, or a synthesized default when none
// was ever saved. The default is never persisted.
func (s *UserService) GetProfile() (*models.UserProfile, error) {
	var profile *models.UserProfile
	err := s.store.View(func(doc *models.Document) error {
		profile = doc.UserProfile
		return nil
	})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		now := time.Now().UTC()
		profile = &models.UserProfile{
			DailyTargets: models.DefaultDailyTargets(),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return profile, nil
}

// UpdateProfile replaces the singleton profile, preserving the original
// creation timestamp.
func (s *UserService) UpdateProfile(in ProfileInput) (*models.UserProfile, error) {
	if in.InitialWeight != nil && *in.InitialWeight <= 0 {
		return nil, validationError("initial weight must be positive")
	}
	if in.Height != nil && *in.Height <= 0 {
		return nil, validationError("height must be positive")
	}

	now := time.Now().UTC()
	profile := &models.UserProfile{
		Name:          in.Name,
		DailyTargets:  targetsFromInput(in.DailyTargets),
		InitialWeight: in.InitialWeight,
		Height:        in.Height,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.store.Update(func(doc *models.Document) error {
		if doc.UserProfile != nil {
			profile.CreatedAt = doc.UserProfile.CreatedAt
		}
		doc.UserProfile = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func targetsFromInput(in *DailyTargetsInput) models.DailyTargets {
	targets := models.DefaultDailyTargets()
	if in == nil {
		return targets
	}
	if in.Calories != nil && *in.Calories > 0 {
		targets.Calories = *in.Calories
	}
	if in.Proteins != nil && *in.Proteins > 0 {
		targets.Proteins = *in.Proteins
	}
	if in.Carbohydrates != nil && *in.Carbohydrates > 0 {
		targets.Carbohydrates = *in.Carbohydrates
	}
	if in.Fat != nil && *in.Fat > 0 {
		targets.Fat = *in.Fat
	}
	return targets
}
