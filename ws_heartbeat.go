package main

import (
	"time"

	"github.com/gorilla/websocket"
)

const wsIdlePingInterval = 30 * time.Second

// pingMessage tags the keepalive with the watched game so clients
// holding several sockets can route it.
func pingMessage(gameID string) wsMessage {
	return wsMessage{Type: "ping", Payload: mustMarshal(map[string]string{"game_id": gameID})}
}

// writePump drains the client's send queue onto the connection and pings
// the watched game's socket once it has been idle for a full interval.
func (c *Client) writePump(conn *websocket.Conn) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := []byte(mustMarshal(pingMessage(c.gameID)))

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
