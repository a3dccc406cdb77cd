package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListMealsParams are the query parameters of GET /meals.
type ListMealsParams struct {
	Page  *int
	Limit *int
}

// ExportParams are the query parameters of GET /meals/export.
type ExportParams struct {
	Format *string
}

// bindMealID binds the {id} path parameter the way the OpenAPI document
// declares it (simple style, required, uuid).
func bindMealID(r *http.Request) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}

func bindListMealsParams(r *http.Request) (ListMealsParams, error) {
	var p ListMealsParams
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &p.Page); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &p.Limit); err != nil {
		return p, err
	}
	return p, nil
}

func bindExportParams(r *http.Request) (ExportParams, error) {
	var p ExportParams
	err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &p.Format)
	return p, err
}
