// Package handler implements the HTTP handlers for the Meal Board API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, meal.go, export.go, notice.go) but share the same Server struct
// so they can reach its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pkordes/meal-board/internal/domain"
)

// MealServicer defines the meal list operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the repo or service layer.
type MealServicer interface {
	Submit(ctx context.Context, form *domain.MealForm) (domain.Meal, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Meal, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Meal, int64, error)
	Remove(ctx context.Context, id uuid.UUID) (domain.Meal, error)
	BeginDrag(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error)
}

// ExportServicer produces the flat meal list export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// NoticeHistory returns recently emitted notices, oldest first.
type NoticeHistory interface {
	Recent(ctx context.Context) []domain.Notice
}

// NoticeStream pushes notices to an upgraded websocket connection until the
// peer goes away.
type NoticeStream interface {
	Serve(ctx context.Context, conn *websocket.Conn)
}

// Server serves every API endpoint. Wire it in main.go via Routes.
type Server struct {
	meals    MealServicer
	export   ExportServicer
	notices  NoticeHistory
	stream   NoticeStream
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer constructs the Server with all its dependencies.
// wsOrigins lists the cross-origin pages allowed to open the notice
// websocket; same-origin and non-browser clients are always allowed.
func NewServer(meals MealServicer, export ExportServicer, notices NoticeHistory, stream NoticeStream, log *slog.Logger, wsOrigins []string) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{meals: meals, export: export, notices: notices, stream: stream, log: log}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
				return true
			}
			return slices.Contains(wsOrigins, origin)
		},
	}
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil, nil)
}

// Routes returns a chi router with every endpoint registered.
// Middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/meals", func(r chi.Router) {
		r.Get("/", s.ListMeals)
		r.Post("/", s.CreateMeal)
		r.Put("/order", s.ReorderMeals)
		r.Get("/export", s.GetExport)
		r.Get("/{id}", s.GetMeal)
		r.Delete("/{id}", s.DeleteMeal)
		r.Post("/{id}/drag", s.BeginDrag)
	})

	r.Get("/notices", s.ListNotices)
	r.Get("/notices/ws", s.StreamNotices)

	return r
}
