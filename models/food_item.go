package models

import "time"

// FoodItem is a catalog entry. Nutrition fields are per 100 units of Unit
// (grams unless stated otherwise).
type FoodItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Calories      float64   `json:"calories"`
	Fat           float64   `json:"fat"`
	Carbohydrates float64   `json:"carbohydrates"`
	Proteins      float64   `json:"proteins"`
	Unit          string    `json:"unit"`
	Barcode       string    `json:"barcode,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
