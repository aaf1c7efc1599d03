package models

import "time"

// DailyTargets holds the user's daily macro goals.
type DailyTargets struct {
	Calories      float64 `json:"calories"`
	Proteins      float64 `json:"proteins"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// DefaultDailyTargets returns the targets used when no profile was ever saved.
func DefaultDailyTargets() DailyTargets {
	return DailyTargets{
		Calories:      2000,
		Proteins:      150,
		Carbohydrates: 250,
		Fat:           65,
	}
}

// UserProfile is a singleton. A nil profile in the document means the user
// never saved one; reads then synthesize a default without persisting it.
type UserProfile struct {
	Name          string       `json:"name"`
	DailyTargets  DailyTargets `json:"dailyTargets"`
	InitialWeight *float64     `json:"initialWeight"`
	Height        *float64     `json:"height"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
