package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/meal-board/internal/domain"
	"github.com/pkordes/meal-board/internal/handler"
	"github.com/pkordes/meal-board/internal/notify"
)

// mockNoticeHistory is a test double for handler.NoticeHistory.
type mockNoticeHistory struct {
	recent []domain.Notice
}

func (m *mockNoticeHistory) Recent(context.Context) []domain.Notice { return m.recent }

var _ handler.NoticeHistory = (*mockNoticeHistory)(nil)

func TestListNotices_200(t *testing.T) {
	id := uuid.New()
	history := &mockNoticeHistory{recent: []domain.Notice{
		{Kind: domain.NoticeAdded, Title: "New meal added", Message: "You added Pasta", MealID: &id},
		{Kind: domain.NoticeReordered, Title: "Meal moved", Message: "You reordered your meals."},
	}}
	h := handler.NewServer(nil, nil, history, nil, nil, nil).Routes()

	rec := serve(h, http.MethodGet, "/notices", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []handler.Notice
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "added", resp[0].Kind)
	require.NotNil(t, resp[0].MealId)
	assert.Equal(t, id, *resp[0].MealId)
	assert.Nil(t, resp[1].MealId)
}

func TestListNotices_EmptyIsArray(t *testing.T) {
	h := handler.NewServer(nil, nil, &mockNoticeHistory{}, nil, nil, nil).Routes()

	rec := serve(h, http.MethodGet, "/notices", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// TestStreamNotices_PushesNotices dials the websocket endpoint through a real
// server and checks that a notice sent to the hub arrives as JSON.
func TestStreamNotices_PushesNotices(t *testing.T) {
	hub := notify.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(handler.NewServer(nil, nil, nil, hub, nil, nil).Routes())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/notices/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Notify(context.Background(), domain.Notice{Kind: domain.NoticeRemoved, Title: "Meal deleted", Message: "You deleted Soup"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got domain.Notice
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, domain.NoticeRemoved, got.Kind)
	assert.Equal(t, "You deleted Soup", got.Message)
}

func TestStreamNotices_RejectsForeignOrigin(t *testing.T) {
	hub := notify.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(handler.NewServer(nil, nil, nil, hub, nil, []string{"http://localhost:5173"}).Routes())
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/notices/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://evil.example.com"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://localhost:5173"}})
	require.NoError(t, err)
	conn.Close()
}
