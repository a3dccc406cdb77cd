package handler

import (
	"net/http"

	"github.com/pkordes/meal-board/internal/domain"
)

// ListNotices handles GET /notices: the recent notices, oldest first.
func (s *Server) ListNotices(w http.ResponseWriter, r *http.Request) {
	recent := s.notices.Recent(r.Context())

	out := make([]Notice, len(recent))
	for i, n := range recent {
		out[i] = noticeToResponse(n)
	}
	writeJSON(w, http.StatusOK, out)
}

// StreamNotices handles GET /notices/ws. After the websocket upgrade every
// new notice is pushed as one JSON text frame.
func (s *Server) StreamNotices(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered with an HTTP error.
		s.log.DebugContext(r.Context(), "notice websocket upgrade failed", "error", err)
		return
	}
	s.stream.Serve(r.Context(), conn)
}

func noticeToResponse(n domain.Notice) Notice {
	return Notice{
		Kind:    string(n.Kind),
		Title:   n.Title,
		Message: n.Message,
		MealId:  n.MealID,
		At:      n.At,
	}
}
