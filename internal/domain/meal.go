// Package domain contains the core data types for the Meal Board API.
// It depends only on google/uuid and is imported by every other internal
// package (repo, service, notify, handler).
package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meal is a single user-created entry in the meal list.
// ID is assigned once at creation and never reused.
type Meal struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"` // opaque locator, never fetched or validated
	CreatedAt   time.Time `json:"created_at"`
}

// MealForm holds the three text inputs used to create a meal.
// A successful submit clears it; a rejected submit leaves it as typed.
type MealForm struct {
	Name        string
	Description string
	ImageURL    string
}

// Validate reports a wrapped ErrValidation when any field is blank after
// trimming surrounding whitespace.
func (f MealForm) Validate() error {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(f.ImageURL) == "" {
		missing = append(missing, "image_url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// Reset clears every field.
func (f *MealForm) Reset() {
	*f = MealForm{}
}

// Reorderer is the contract between the meal list and a drag-to-reorder
// list surface. The surface owns drag physics and index math; it only
// reports which row a drag started on and the full sequence once the
// gesture ends.
type Reorderer interface {
	BeginDrag(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) ([]Meal, error)
}
