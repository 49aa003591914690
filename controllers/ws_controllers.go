package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-floorplan/hub"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // floor screens run on the local network
	},
}

// FloorSocket -> endpoint WebSocket untuk layar floor plan
func FloorSocket(h *hub.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
			return
		}

		h.RegisterClient(ws)

		// Baca pesan sampai client disconnect
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		h.UnregisterClient(ws)
	}
}
