package service

import (
	"context"
	"fmt"

	"github.com/pkordes/meal-board/internal/domain"
	"github.com/pkordes/meal-board/internal/repo"
)

// ExportService assembles a flat snapshot of the meal list.
type ExportService struct {
	meals repo.MealRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(meals repo.MealRepo) *ExportService {
	return &ExportService{meals: meals}
}

// Export returns one row per meal in display order.
// An empty list yields an empty, non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	meals, err := s.meals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(meals))
	for i, m := range meals {
		rows = append(rows, domain.ExportRow{
			Position:    i + 1,
			MealID:      m.ID.String(),
			Name:        m.Name,
			Description: m.Description,
			ImageURL:    m.ImageURL,
			CreatedAt:   m.CreatedAt,
		})
	}
	return rows, nil
}
