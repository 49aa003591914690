package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/router"
	"github.com/yeremiapane/restaurant-floorplan/store"
)

const testDate = "2024-06-01"

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupFloorRouter memakai MemoryStore berisi mock floor pada testDate
func setupFloorRouter(t *testing.T) (*gin.Engine, *store.MemoryStore, *[]floorplan.Event) {
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore(store.MockTables(), store.MockReservations(testDate))
	events := &[]floorplan.Event{}
	planner := floorplan.NewPlanner(st, floorplan.NotifierFunc(func(ev floorplan.Event) {
		*events = append(*events, ev)
	}))
	r := router.SetupRouter(router.Options{Planner: planner, CORSOrigin: "*"})
	return r, st, events
}

func doJSON(t *testing.T, r http.Handler, method, url string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}
