// Package service contains the business logic for the Meal Board API.
// Services validate input, enforce list rules, call the repo, and emit one
// notice per user-visible outcome. Nothing here knows about HTTP.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/meal-board/internal/domain"
	"github.com/pkordes/meal-board/internal/repo"
)

// Notifier receives notices. It is fire-and-forget; the service never waits
// on or reacts to delivery.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

// NoticeTexts builds the localized notice for each outcome.
type NoticeTexts interface {
	Validation() domain.Notice
	Added(meal domain.Meal) domain.Notice
	Removed(meal domain.Meal) domain.Notice
	Reordered() domain.Notice
}

// MealService implements the meal list operations: submit, remove, reorder.
type MealService struct {
	meals   repo.MealRepo
	texts   NoticeTexts
	notices Notifier
	log     *slog.Logger
}

// compile-time check: the service is what a drag-to-reorder surface talks to.
var _ domain.Reorderer = (*MealService)(nil)

// NewMealService constructs a MealService.
func NewMealService(meals repo.MealRepo, texts NoticeTexts, notices Notifier, log *slog.Logger) *MealService {
	return &MealService{meals: meals, texts: texts, notices: notices, log: log}
}

// Submit validates form and appends a new meal built from it.
// On success the form is cleared and an "added" notice names the meal.
// On a blank field it returns domain.ErrValidation, emits a validation
// notice, and leaves both the list and the form untouched.
func (s *MealService) Submit(ctx context.Context, form *domain.MealForm) (domain.Meal, error) {
	if form == nil {
		form = &domain.MealForm{}
	}
	if err := form.Validate(); err != nil {
		s.notices.Notify(ctx, s.texts.Validation())
		return domain.Meal{}, fmt.Errorf("service.MealService.Submit: %w", err)
	}

	meal, err := s.meals.Append(ctx, domain.Meal{
		Name:        form.Name,
		Description: form.Description,
		ImageURL:    form.ImageURL,
	})
	if err != nil {
		return domain.Meal{}, fmt.Errorf("service.MealService.Submit: %w", err)
	}

	form.Reset()
	s.notices.Notify(ctx, s.texts.Added(meal))
	return meal, nil
}

// Remove deletes the meal with the given id and emits a notice naming it.
// A stale id is a normal outcome: it returns domain.ErrNotFound, changes
// nothing and emits no notice.
func (s *MealService) Remove(ctx context.Context, id uuid.UUID) (domain.Meal, error) {
	removed, err := s.meals.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "remove of absent meal ignored", "meal_id", id.String())
		}
		return domain.Meal{}, fmt.Errorf("service.MealService.Remove: %w", err)
	}

	s.notices.Notify(ctx, s.texts.Removed(removed))
	return removed, nil
}

// BeginDrag confirms the row a drag started on is still in the list.
// Returns domain.ErrNotFound for a stale row.
func (s *MealService) BeginDrag(ctx context.Context, id uuid.UUID) error {
	if _, err := s.meals.GetByID(ctx, id); err != nil {
		return fmt.Errorf("service.MealService.BeginDrag: %w", err)
	}
	s.log.DebugContext(ctx, "drag started", "meal_id", id.String())
	return nil
}

// Reorder replaces the list order with ids, the full sequence reported when
// a drag ends. ids must be a permutation of the current list; anything else
// returns domain.ErrValidation with the list unchanged.
func (s *MealService) Reorder(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error) {
	meals, err := s.meals.Reorder(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service.MealService.Reorder: %w", err)
	}

	s.notices.Notify(ctx, s.texts.Reordered())
	return nonNil(meals), nil
}

// GetByID returns a single meal.
// Returns domain.ErrNotFound if it is not in the list.
func (s *MealService) GetByID(ctx context.Context, id uuid.UUID) (domain.Meal, error) {
	meal, err := s.meals.GetByID(ctx, id)
	if err != nil {
		return domain.Meal{}, fmt.Errorf("service.MealService.GetByID: %w", err)
	}
	return meal, nil
}

// List returns the whole list in display order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *MealService) List(ctx context.Context) ([]domain.Meal, error) {
	meals, err := s.meals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MealService.List: %w", err)
	}
	return nonNil(meals), nil
}

// ListPaged returns one page of the list plus the total meal count.
func (s *MealService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Meal, int64, error) {
	meals, total, err := s.meals.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.MealService.ListPaged: %w", err)
	}
	return nonNil(meals), total, nil
}

func nonNil(meals []domain.Meal) []domain.Meal {
	if meals == nil {
		return []domain.Meal{}
	}
	return meals
}
