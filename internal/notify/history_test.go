package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/meal-board/internal/domain"
	"github.com/pkordes/meal-board/internal/notify"
)

func noticeN(i int) domain.Notice {
	return domain.Notice{Kind: domain.NoticeAdded, Title: "t", Message: fmt.Sprintf("n%d", i)}
}

func messages(notices []domain.Notice) []string {
	out := make([]string, len(notices))
	for i, n := range notices {
		out[i] = n.Message
	}
	return out
}

func TestHistory_EvictsOldest(t *testing.T) {
	h := notify.NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Notify(context.Background(), noticeN(i))
	}

	assert.Equal(t, []string{"n2", "n3", "n4"}, messages(h.Recent(context.Background())))
}

func TestHistory_RecentIsACopy(t *testing.T) {
	h := notify.NewHistory(2)
	h.Notify(context.Background(), noticeN(0))

	got := h.Recent(context.Background())
	got[0].Message = "changed"

	assert.Equal(t, []string{"n0"}, messages(h.Recent(context.Background())))
}

func TestHistory_MinimumSize(t *testing.T) {
	h := notify.NewHistory(0)
	h.Notify(context.Background(), noticeN(0))
	h.Notify(context.Background(), noticeN(1))

	assert.Equal(t, []string{"n1"}, messages(h.Recent(context.Background())))
}

func TestFanout_DeliversToAll(t *testing.T) {
	a, b := notify.NewHistory(5), notify.NewHistory(5)

	notify.Fanout{a, b}.Notify(context.Background(), noticeN(7))

	assert.Len(t, a.Recent(context.Background()), 1)
	assert.Len(t, b.Recent(context.Background()), 1)
}

func TestLogger_WritesNotice(t *testing.T) {
	var buf bytes.Buffer
	l := notify.Logger{Log: slog.New(slog.NewJSONHandler(&buf, nil))}

	msgs, err := notify.NewMessages("en")
	require.NoError(t, err)
	n := msgs.Removed(pasta())
	l.Notify(context.Background(), n)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "notice", entry["msg"])
	assert.Equal(t, "removed", entry["kind"])
	assert.Equal(t, "You deleted Pasta", entry["message"])
	assert.Equal(t, n.MealID.String(), entry["meal_id"])
}
