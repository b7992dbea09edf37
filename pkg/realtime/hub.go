package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection, bound to an authenticated user.
type Client struct {
	UserID string
	conn   *websocket.Conn
}

// inboundEvent is the envelope clients send over the socket.
type inboundEvent struct {
	Event      string `json:"event"`
	AsteroidID string `json:"asteroid_id,omitempty"`
	Message    string `json:"message,omitempty"`
	Username   string `json:"username,omitempty"`
}

// chatMessage is rebroadcast to every client in an asteroid chat room.
type chatMessage struct {
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub tracks connected clients by user room and by asteroid chat room.
type Hub struct {
	mu       sync.RWMutex
	users    map[string]map[*Client]struct{}
	rooms    map[string]map[*Client]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		users: make(map[string]map[*Client]struct{}),
		rooms: make(map[string]map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	if h.users[c.UserID] == nil {
		h.users[c.UserID] = make(map[*Client]struct{})
	}
	h.users[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if set := h.users[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.users, c.UserID)
		}
	}
	for room, set := range h.rooms {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *Hub) joinChat(c *Client, asteroidID string) {
	h.mu.Lock()
	room := "chat_" + asteroidID
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	h.mu.Unlock()
}

// SendToUser pushes an event to every connection of one user.
func (h *Hub) SendToUser(userID, event string, payload any) {
	msg := marshalEvent(event, payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.users[userID] {
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// Broadcast pushes an event to every connected client.
func (h *Hub) Broadcast(event string, payload any) {
	msg := marshalEvent(event, payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.users {
		for c := range set {
			_ = c.conn.WriteMessage(websocket.TextMessage, msg)
		}
	}
}

func (h *Hub) broadcastChat(asteroidID string, payload any) {
	msg := marshalEvent("receive_message", payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms["chat_"+asteroidID] {
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
	}
}

func marshalEvent(event string, payload any) []byte {
	msg, _ := json.Marshal(map[string]any{"event": event, "data": payload})
	return msg
}

// ServeWS upgrades the request, joins the user's room and runs the read
// loop until the client disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Realtime] upgrade failed: %v", err)
		return
	}

	client := &Client{UserID: userID, conn: conn}
	h.register(client)
	defer h.unregister(client)

	for {
		var ev inboundEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return
		}

		switch ev.Event {
		case "join_asteroid_chat":
			h.joinChat(client, ev.AsteroidID)
		case "send_message":
			h.broadcastChat(ev.AsteroidID, chatMessage{
				Username:  ev.Username,
				Message:   ev.Message,
				Timestamp: time.Now(),
			})
		}
	}
}
