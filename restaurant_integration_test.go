package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/hub"
	"github.com/yeremiapane/restaurant-floorplan/router"
	"github.com/yeremiapane/restaurant-floorplan/store"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

const integrationDate = "2024-06-01"

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndFloorFlow menguji flow utama di atas SQLite:
// 1. Lihat reservasi yang belum dapat meja
// 2. Validasi drag ke meja terlalu kecil -> ditolak
// 3. Assign ke meja yang cukup -> event websocket diterima
// 4. Meja diisi (occupied) -> assign berikutnya ditolak
// 5. Statistik floor ikut berubah
func TestEndToEndFloorFlow(t *testing.T) {
	// 1. Setup DB in-memory + seed
	gs := setupIntegrationStore(t)

	// 2. Setup router + hub
	floorHub := hub.NewHub()
	planner := floorplan.NewPlanner(gs, floorplan.Fanout{floorHub})
	srv := httptest.NewServer(router.SetupRouter(router.Options{Planner: planner, Hub: floorHub, CORSOrigin: "*"}))
	defer srv.Close()

	ws := dialFloor(t, srv.URL)
	require.Eventually(t, func() bool { return floorHub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	// 3. Unassigned
	var unassigned []struct {
		ID string `json:"id"`
	}
	call(t, srv.URL, http.MethodGet, "/reservations/unassigned?date="+integrationDate, nil, http.StatusOK, &unassigned)
	require.Len(t, unassigned, 4)
	assert.Equal(t, "r1", unassigned[0].ID)

	// 4. r4 (party 10) di meja t2 (4 kursi) -> 422
	call(t, srv.URL, http.MethodPost, "/reservations/r4/validate", map[string]string{"table_id": "t2"}, http.StatusUnprocessableEntity, nil)

	// 5. r4 ke private room t10 -> OK + event
	call(t, srv.URL, http.MethodPost, "/reservations/r4/assign", map[string]string{"table_id": "t10"}, http.StatusOK, nil)

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev floorplan.Event
	require.NoError(t, ws.ReadJSON(&ev))
	assert.Equal(t, floorplan.EventTableAssigned, ev.Type)
	require.NotNil(t, ev.Reservation)
	assert.Equal(t, []string{"t10"}, ev.Reservation.TableIDs)

	// 6. t2 occupied lalu r1 tidak bisa ke t2
	call(t, srv.URL, http.MethodPatch, "/tables/t2", map[string]string{"status": "occupied"}, http.StatusOK, nil)
	require.NoError(t, ws.ReadJSON(&ev))
	assert.Equal(t, floorplan.EventTableUpdate, ev.Type)

	call(t, srv.URL, http.MethodPost, "/reservations/r1/assign", map[string]string{"table_id": "t2"}, http.StatusConflict, nil)

	// 7. Statistik
	var stats floorplan.Stats
	call(t, srv.URL, http.MethodGet, "/floorplan/stats", nil, http.StatusOK, &stats)
	assert.Equal(t, 3, stats.ByStatus["occupied"])

	call(t, srv.URL, http.MethodGet, "/reservations/unassigned?date="+integrationDate, nil, http.StatusOK, &unassigned)
	assert.Len(t, unassigned, 3)
}

func setupIntegrationStore(t *testing.T) *store.GormStore {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	gs := store.NewGormStore(db)
	require.NoError(t, gs.Migrate())
	_, err = gs.SeedIfEmpty(store.MockTables(), store.MockReservations(integrationDate))
	require.NoError(t, err)
	return gs
}

func dialFloor(t *testing.T, baseURL string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(baseURL, "http") + "/ws/floor"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// call mengirim request JSON dan decode field "data" ke out (boleh nil)
func call(t *testing.T, baseURL, method, path string, payload interface{}, wantCode int, out interface{}) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, baseURL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Equal(t, wantCode, resp.StatusCode, "%s %s: %s", method, path, env.Message)

	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}
