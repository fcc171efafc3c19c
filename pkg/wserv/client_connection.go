package wserv

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 20 * time.Second
	writeWait  = 10 * time.Second
)

type ClientConnection struct {
	ID   string
	Conn *websocket.Conn
	Send chan Message
	Hub  *Hub
}

// readPump only answers heartbeats; browsers don't send commands.
func (c *ClientConnection) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		_ = c.Conn.Close()
	}()

	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				hubLog().WithField("client", c.ID).Warnf("websocket error: %s", err)
			}
			return
		}

		if msg.Command == MsgHeartbeat {
			c.trySend(Message{
				Command:   MsgHeartbeatAck,
				ID:        msg.ID,
				Timestamp: time.Now(),
				ClientID:  c.ID,
			})
		}
	}
}

func (c *ClientConnection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteJSON(message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// trySend drops the message if the client is backed up or already gone.
func (c *ClientConnection) trySend(msg Message) {
	defer func() { _ = recover() }()

	select {
	case c.Send <- msg:
	default:
	}
}
