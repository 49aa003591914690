package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

// writeWait membatasi berapa lama satu layar boleh menahan broadcast
const writeWait = 2 * time.Second

// Hub menampung semua layar floor plan yang terhubung lewat websocket
type Hub struct {
	clients   map[*websocket.Conn]string // conn -> remote address
	mutex     sync.Mutex
	writeWait time.Duration
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]string), writeWait: writeWait}
}

// RegisterClient -> menambahkan connection ke hub
func (h *Hub) RegisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = conn.RemoteAddr().String()
}

// UnregisterClient -> melepaskan connection
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Notify broadcasts a floor event to every connected screen.
func (h *Hub) Notify(ev floorplan.Event) {
	h.Broadcast(ev)
}

// Broadcast sends msg as JSON. Clients that fail a write are dropped.
func (h *Hub) Broadcast(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	utils.InfoLogger.Debugf("Broadcasting message to %d clients", len(h.clients))
	for conn, addr := range h.clients {
		if err := conn.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
			utils.ErrorLogger.Printf("Error setting write deadline for %s: %v", addr, err)
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending message to %s: %v", addr, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
