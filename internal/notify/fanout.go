package notify

import (
	"context"
	"log/slog"

	"github.com/pkordes/meal-board/internal/domain"
)

// Notifier receives notices. Delivery is fire-and-forget: there is nothing
// for the sender to act on if a notice cannot be shown.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

// Fanout delivers each notice to every wrapped Notifier in order.
type Fanout []Notifier

// Notify implements Notifier.
func (f Fanout) Notify(ctx context.Context, n domain.Notice) {
	for _, target := range f {
		target.Notify(ctx, n)
	}
}

// Logger writes each notice as one structured log line.
type Logger struct {
	Log *slog.Logger
}

// Notify implements Notifier.
func (l Logger) Notify(ctx context.Context, n domain.Notice) {
	attrs := []any{"kind", n.Kind, "title", n.Title, "message", n.Message}
	if n.MealID != nil {
		attrs = append(attrs, "meal_id", n.MealID.String())
	}
	l.Log.InfoContext(ctx, "notice", attrs...)
}
