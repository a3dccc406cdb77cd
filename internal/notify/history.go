package notify

import (
	"context"
	"sync"

	"github.com/pkordes/meal-board/internal/domain"
)

// History keeps the most recent notices in memory, oldest first.
type History struct {
	mu      sync.Mutex
	size    int
	notices []domain.Notice
}

// NewHistory returns a History holding at most size notices.
// A size below 1 is treated as 1.
func NewHistory(size int) *History {
	size = max(size, 1)
	return &History{size: size, notices: make([]domain.Notice, 0, size)}
}

// Notify records n, evicting the oldest notice when full.
func (h *History) Notify(_ context.Context, n domain.Notice) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.notices) == h.size {
		copy(h.notices, h.notices[1:])
		h.notices = h.notices[:h.size-1]
	}
	h.notices = append(h.notices, n)
}

// Recent returns a copy of the recorded notices, oldest first.
func (h *History) Recent(_ context.Context) []domain.Notice {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.Notice, len(h.notices))
	copy(out, h.notices)
	return out
}
