package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/meal-board/internal/domain"
)

// csvHeaders defines the column names written as the first row of a CSV export.
var csvHeaders = []string{"position", "meal_id", "name", "description", "image_url", "created_at"}

// GetExport handles GET /meals/export.
// It returns the list in display order. Use ?format=csv to receive CSV;
// default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	q, err := bindExportParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody(err.Error()))
		return
	}
	format := "json"
	if q.Format != nil {
		format = *q.Format
	}
	if format != "json" && format != "csv" {
		writeJSON(w, http.StatusBadRequest, badRequestBody("format must be json or csv"))
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domainRowToResponse(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows as CSV with a header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="meals.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// domainRowToResponse maps a domain.ExportRow to its JSON form.
func domainRowToResponse(r domain.ExportRow) ExportRow {
	// MealID comes from uuid.UUID.String, so parsing cannot fail.
	id, _ := uuid.Parse(r.MealID)
	return ExportRow{
		Position:    r.Position,
		MealId:      id,
		Name:        r.Name,
		Description: r.Description,
		ImageUrl:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.Itoa(r.Position),
		r.MealID,
		r.Name,
		r.Description,
		r.ImageURL,
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
