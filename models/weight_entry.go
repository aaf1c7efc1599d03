package models

import "time"

// WeightEntry records one weight measurement. Entries are keyed by Date in
// the document, so there is at most one per day.
type WeightEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Weight    float64   `json:"weight"`
	Time      string    `json:"time,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
