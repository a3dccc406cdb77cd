package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoticeKind identifies which list event produced a Notice.
type NoticeKind string

const (
	NoticeValidation NoticeKind = "validation"
	NoticeAdded      NoticeKind = "added"
	NoticeRemoved    NoticeKind = "removed"
	NoticeReordered  NoticeKind = "reordered"
)

// Notice is a user-visible, dismiss-only message about a list event.
// MealID is nil for validation and reorder notices.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
	MealID  *uuid.UUID `json:"meal_id,omitempty"`
	At      time.Time  `json:"at"`
}
