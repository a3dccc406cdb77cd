package domain

import "time"

// ExportRow is a single row in the meal list export.
// Position is 1-based and reflects the current display order.
type ExportRow struct {
	Position    int
	MealID      string
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}
