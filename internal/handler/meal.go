package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/meal-board/internal/domain"
)

// CreateMeal handles POST /meals.
func (s *Server) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var body CreateMealRequest
	if !decodeBody(w, r, &body) {
		return
	}

	form := domain.MealForm{Name: body.Name, Description: body.Description, ImageURL: body.ImageUrl}
	created, err := s.meals.Submit(r.Context(), &form)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mealToResponse(created))
}

// ListMeals handles GET /meals.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
// pagination.total is the number of meals in the whole list.
func (s *Server) ListMeals(w http.ResponseWriter, r *http.Request) {
	q, err := bindListMealsParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody(err.Error()))
		return
	}

	params := domain.NewPaginationParams(q.Page, q.Limit)
	meals, total, err := s.meals.ListPaged(r.Context(), params)
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MealPage{
		Data: mealsToResponse(meals),
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetMeal handles GET /meals/{id}.
func (s *Server) GetMeal(w http.ResponseWriter, r *http.Request) {
	id, ok := s.mealID(w, r)
	if !ok {
		return
	}

	meal, err := s.meals.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("meal not found"))
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mealToResponse(meal))
}

// DeleteMeal handles DELETE /meals/{id}.
// A stale id answers 404 and leaves the list as it was.
func (s *Server) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	id, ok := s.mealID(w, r)
	if !ok {
		return
	}

	if _, err := s.meals.Remove(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("meal not found"))
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BeginDrag handles POST /meals/{id}/drag, sent when a row's drag handle is
// pressed.
func (s *Server) BeginDrag(w http.ResponseWriter, r *http.Request) {
	id, ok := s.mealID(w, r)
	if !ok {
		return
	}

	if err := s.meals.BeginDrag(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("meal not found"))
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderMeals handles PUT /meals/order with the full sequence reported when
// a drag ends.
func (s *Server) ReorderMeals(w http.ResponseWriter, r *http.Request) {
	var body ReorderRequest
	if !decodeBody(w, r, &body) {
		return
	}

	meals, err := s.meals.Reorder(r.Context(), body.Ids)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mealsToResponse(meals))
}

// mealID binds the {id} path parameter, answering 400 when it is not a UUID.
func (s *Server) mealID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := bindMealID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody(err.Error()))
		return uuid.Nil, false
	}
	return id, true
}

// --- mapping helpers --------------------------------------------------------

// mealToResponse converts a domain.Meal into its wire form.
func mealToResponse(m domain.Meal) Meal {
	return Meal{
		Id:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageUrl:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

// mealsToResponse always returns a non-nil slice so the JSON is [] not null.
func mealsToResponse(meals []domain.Meal) []Meal {
	out := make([]Meal, len(meals))
	for i, m := range meals {
		out[i] = mealToResponse(m)
	}
	return out
}
