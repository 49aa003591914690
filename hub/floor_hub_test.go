package hub

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/models"
)

func startHubServer(t *testing.T, h *Hub) *httptest.Server {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.RegisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		h.UnregisterClient(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsFloorEvents(t *testing.T) {
	h := NewHub()
	srv := startHubServer(t, h)

	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	tbl := models.Table{ID: "t1", Number: 1, Capacity: 4, Status: models.TableOccupied}
	h.Notify(floorplan.NewEvent(floorplan.EventTableUpdate, &tbl, nil))

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		var got floorplan.Event
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, floorplan.EventTableUpdate, got.Type)
		require.NotNil(t, got.Table)
		assert.Equal(t, models.TableOccupied, got.Table.Status)
	}
}

func TestHubForgetsClosedClients(t *testing.T) {
	h := NewHub()
	srv := startHubServer(t, h)

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubDropsStalledClients(t *testing.T) {
	h := NewHub()
	h.writeWait = 50 * time.Millisecond
	srv := startHubServer(t, h)

	// connected but never reads, so the kernel buffers eventually fill
	dial(t, srv)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	payload := strings.Repeat("x", 1<<20)
	for i := 0; i < 64 && h.ClientCount() > 0; i++ {
		start := time.Now()
		h.Broadcast(payload)
		assert.Less(t, time.Since(start), time.Second)
	}
	assert.Equal(t, 0, h.ClientCount())
}
