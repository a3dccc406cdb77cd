package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/meal-board/internal/domain"
)

func TestMealForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    domain.MealForm
		wantErr string
	}{
		{"all set", domain.MealForm{Name: "Pasta", Description: "Creamy", ImageURL: "http://x/img.png"}, ""},
		{"blank description", domain.MealForm{Name: "Pasta", Description: "", ImageURL: "http://x/img.png"}, "description required"},
		{"whitespace name", domain.MealForm{Name: "  \t", Description: "Creamy", ImageURL: "http://x/img.png"}, "name required"},
		{"all blank", domain.MealForm{}, "name, description, image_url required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMealForm_Reset(t *testing.T) {
	f := domain.MealForm{Name: "Pasta", Description: "Creamy", ImageURL: "u"}
	f.Reset()
	assert.Equal(t, domain.MealForm{}, f)
}

func TestNewPaginationParams(t *testing.T) {
	zero, five, big := 0, 5, 500

	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, domain.NewPaginationParams(nil, nil))
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, domain.NewPaginationParams(&zero, &zero))
	assert.Equal(t, domain.PaginationParams{Page: 5, Limit: 100}, domain.NewPaginationParams(&five, &big))
}

func TestPaginationParams_Bounds(t *testing.T) {
	p := domain.PaginationParams{Page: 2, Limit: 3}

	start, end := p.Bounds(7)
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	start, end = p.Bounds(4)
	assert.Equal(t, 3, start)
	assert.Equal(t, 4, end)

	// Past the end: empty range, never out of bounds.
	start, end = p.Bounds(2)
	assert.Equal(t, 2, start)
	assert.Equal(t, 2, end)
}
