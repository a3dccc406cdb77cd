package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// The types below mirror the schemas in spec/openapi.yaml.

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Meal is the wire form of domain.Meal.
type Meal struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ImageUrl    string             `json:"image_url"`
	CreatedAt   time.Time          `json:"created_at"`
}

// CreateMealRequest is the body of POST /meals. Missing fields decode as
// empty strings and are rejected by validation.
type CreateMealRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageUrl    string `json:"image_url"`
}

// ReorderRequest is the body of PUT /meals/order: every meal id, in the new
// display order.
type ReorderRequest struct {
	Ids []openapi_types.UUID `json:"ids"`
}

// Pagination describes the page returned and the total meal count.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// MealPage is the body of GET /meals.
type MealPage struct {
	Data       []Meal     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ExportRow is one row of GET /meals/export in JSON form.
type ExportRow struct {
	Position    int                `json:"position"`
	MealId      openapi_types.UUID `json:"meal_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ImageUrl    string             `json:"image_url"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Notice is the wire form of domain.Notice.
type Notice struct {
	Kind    string              `json:"kind"`
	Title   string              `json:"title"`
	Message string              `json:"message"`
	MealId  *openapi_types.UUID `json:"meal_id,omitempty"`
	At      time.Time           `json:"at"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every 4xx and 5xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
