package wserv

import (
	"context"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-uuid"
	"github.com/mergington/activities/pkg/actmodel"
	"github.com/mergington/activities/pkg/clog"
	"github.com/mergington/activities/pkg/registration"
)

// Message commands sent to browsers.
const (
	MsgConnected      = "connected"
	MsgRosterSnapshot = "roster_snapshot"
	MsgRosterChanged  = "roster_changed"
	MsgHeartbeat      = "heartbeat"
	MsgHeartbeatAck   = "heartbeat_ack"
)

type Message struct {
	Command   string    `json:"command"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ClientID  string    `json:"client_id"`
	Payload   any       `json:"payload"`
}

// SnapshotFunc returns the current catalog for newly connected clients.
type SnapshotFunc func() map[string]actmodel.Activity

// Hub fans roster changes out to every connected websocket client. All
// client bookkeeping happens on the Run goroutine.
type Hub struct {
	clients    map[string]*ClientConnection
	register   chan *ClientConnection
	unregister chan *ClientConnection
	broadcast  chan Message
	snapshot   SnapshotFunc

	// done is closed when Run returns.
	done chan struct{}
}

func NewHub(snapshot SnapshotFunc) *Hub {
	return &Hub{
		clients:    make(map[string]*ClientConnection),
		register:   make(chan *ClientConnection),
		unregister: make(chan *ClientConnection),
		broadcast:  make(chan Message, 256),
		snapshot:   snapshot,
		done:       make(chan struct{}),
	}
}

func hubLog() *log.Entry {
	return clog.UsingCtx(clog.HTTPCtx).WithField("component", "wserv")
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.Send)
			}
			return

		case client := <-h.register:
			h.clients[client.ID] = client
			hubLog().WithField("client", client.ID).Info("client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				hubLog().WithField("client", client.ID).Info("client unregistered")
			}

		case message := <-h.broadcast:
			for id, client := range h.clients {
				select {
				case client.Send <- message:
				default:
					hubLog().WithField("client", id).Warn("dropping slow client")
					delete(h.clients, id)
					close(client.Send)
				}
			}
		}
	}
}

// RosterChanged queues the change for broadcast. It never blocks; when the
// queue is full the change is dropped and clients catch up on reconnect.
func (h *Hub) RosterChanged(change registration.Change) {
	msg := Message{
		Command:   MsgRosterChanged,
		ID:        newID(),
		Timestamp: change.At,
		Payload:   change,
	}

	select {
	case h.broadcast <- msg:
	default:
		hubLog().WithField("activity", change.Activity).Warn("broadcast queue full, dropping roster change")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hubLog().Errorf("upgrade failed: %s", err)
		return
	}

	client := &ClientConnection{
		ID:   newID(),
		Conn: conn,
		Send: make(chan Message, 64),
		Hub:  h,
	}

	// Queue the greeting before registering so it is first on the wire.
	client.Send <- Message{
		Command:   MsgConnected,
		ID:        "system",
		Timestamp: time.Now(),
		ClientID:  client.ID,
	}
	if h.snapshot != nil {
		client.Send <- Message{
			Command:   MsgRosterSnapshot,
			ID:        newID(),
			Timestamp: time.Now(),
			ClientID:  client.ID,
			Payload:   h.snapshot(),
		}
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func newID() string {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return time.Now().Format(time.RFC3339Nano)
	}

	return id
}
