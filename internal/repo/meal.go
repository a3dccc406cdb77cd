// Package repo holds the meal list. The list lives in process memory only;
// nothing survives a restart. No business rules live here beyond keeping the
// sequence consistent: validation and notices belong to the service layer.
package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/meal-board/internal/domain"
)

// MealRepo defines the operations on the ordered meal list.
// The service layer depends on this interface, not the in-memory
// implementation, which allows the service to be unit-tested with a mock.
type MealRepo interface {
	// Append assigns a fresh id and created_at to meal, adds it to the end of
	// the list and returns the stored record.
	Append(ctx context.Context, meal domain.Meal) (domain.Meal, error)

	// GetByID returns the meal with the given id.
	// Returns domain.ErrNotFound if it is not in the list.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Meal, error)

	// List returns the whole list in display order.
	List(ctx context.Context) ([]domain.Meal, error)

	// ListPaged returns one page of the list and the total number of meals.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Meal, int64, error)

	// Delete removes a meal by id and returns the removed record.
	// Returns domain.ErrNotFound if it is not in the list.
	Delete(ctx context.Context, id uuid.UUID) (domain.Meal, error)

	// Reorder replaces the list order with ids, which must name every current
	// meal exactly once. Returns the new list, or a wrapped
	// domain.ErrValidation with the list unchanged.
	Reorder(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error)
}

// memMealRepo is the in-memory implementation of MealRepo.
// meals is the display order; every mutation swaps it under mu.
type memMealRepo struct {
	mu    sync.RWMutex
	meals []domain.Meal
	newID func() (uuid.UUID, error)
	now   func() time.Time
}

// NewMealRepo constructs an empty MealRepo.
// Ids are UUID v7, so they sort by creation instant.
func NewMealRepo() MealRepo {
	return &memMealRepo{
		newID: uuid.NewV7,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *memMealRepo) Append(ctx context.Context, meal domain.Meal) (domain.Meal, error) {
	id, err := r.newID()
	if err != nil {
		return domain.Meal{}, fmt.Errorf("repo.MealRepo.Append: generate id: %w", err)
	}
	meal.ID = id
	meal.CreatedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.meals = append(r.meals, meal)
	return meal, nil
}

func (r *memMealRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Meal{}, fmt.Errorf("repo.MealRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.meals[i], nil
}

func (r *memMealRepo) List(ctx context.Context) ([]domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Meal, len(r.meals))
	copy(out, r.meals)
	return out, nil
}

func (r *memMealRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Meal, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := p.Bounds(len(r.meals))
	out := make([]domain.Meal, end-start)
	copy(out, r.meals[start:end])
	return out, int64(len(r.meals)), nil
}

func (r *memMealRepo) Delete(ctx context.Context, id uuid.UUID) (domain.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Meal{}, fmt.Errorf("repo.MealRepo.Delete: %w", domain.ErrNotFound)
	}
	removed := r.meals[i]

	// Build a fresh slice so copies handed out by List never alias the new order.
	next := make([]domain.Meal, 0, len(r.meals)-1)
	next = append(next, r.meals[:i]...)
	next = append(next, r.meals[i+1:]...)
	r.meals = next
	return removed, nil
}

func (r *memMealRepo) Reorder(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(ids) != len(r.meals) {
		return nil, fmt.Errorf("repo.MealRepo.Reorder: %w: expected %d ids, got %d",
			domain.ErrValidation, len(r.meals), len(ids))
	}

	byID := make(map[uuid.UUID]domain.Meal, len(r.meals))
	for _, m := range r.meals {
		byID[m.ID] = m
	}

	next := make([]domain.Meal, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("repo.MealRepo.Reorder: %w: id %s is unknown or repeated",
				domain.ErrValidation, id)
		}
		delete(byID, id)
		next = append(next, m)
	}
	r.meals = next

	out := make([]domain.Meal, len(next))
	copy(out, next)
	return out, nil
}

// indexOf returns the position of id in the list, or -1.
// Callers must hold mu.
func (r *memMealRepo) indexOf(id uuid.UUID) int {
	for i, m := range r.meals {
		if m.ID == id {
			return i
		}
	}
	return -1
}
