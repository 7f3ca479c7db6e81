package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vishaldubey2210/portfolio/pkg/logger"
)

// Connection limits.
const (
	// writeWait bounds a single frame write. A connection that cannot take a
	// frame in this time is closed.
	writeWait = 10 * time.Second

	// pongWait is how long the read side waits for any frame (a pong or a
	// heartbeat) before the visitor counts as gone.
	pongWait = 60 * time.Second

	// pingPeriod must stay below pongWait so a healthy peer always answers
	// before the read deadline passes.
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize caps inbound frames. Visitor events are a few dozen bytes.
	maxMessageSize = 4096

	// sendBufferSize is the per-client queue of outbound count updates. A
	// client whose queue is full is dropped by the hub.
	sendBufferSize = 32
)

// Client is one visitor connection.
//
// Each connection has two goroutines. ReadPump runs on the upgrading
// request's goroutine and handles inbound events. WritePump runs on its own
// and drains send. gorilla/websocket allows one concurrent reader and one
// concurrent writer, and mu makes the direct replies from ReadPump share the
// writer slot with WritePump.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	id   string

	// send is written only by the hub and closed only by the hub.
	send chan []byte
	mu   sync.Mutex // serializes conn writes
}

func newClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		id:   id,
		send: make(chan []byte, sendBufferSize),
	}
}

// ReadPump reads client events until the connection fails, then
// unregisters the client and closes the connection.
//
// Every pong and every heartbeat pushes the read deadline out by pongWait.
// Malformed frames are logged at debug level and skipped.
func (c *Client) ReadPump() {
	log := logger.For("ws")

	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("client", c.id).Msg("unexpected close")
			}
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			log.Debug().Err(err).Str("client", c.id).Msg("invalid message")
			continue
		}

		c.handleEvent(event)
	}
}

func (c *Client) handleEvent(event Event) {
	log := logger.For("ws")

	switch event.Op {
	case OpHeartbeat:
		if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			return
		}
		c.sendDirect(Event{Op: OpHeartbeatAck})

	case OpPageView:
		var data PageViewData
		if err := decodeData(event.Data, &data); err != nil {
			return
		}
		log.Info().Str("client", c.id).Str("page", data.Page).Msg("page view")

	case OpClickEvent:
		log.Info().Str("client", c.id).Interface("data", event.Data).Msg("click event")

	default:
		log.Debug().Str("client", c.id).Str("op", event.Op).Msg("unknown op")
	}
}

// decodeData re-decodes an event payload into dst.
func decodeData(data any, dst any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// sendDirect writes a reply straight to the connection. Replies bypass send
// so the read pump never writes to a channel the hub may have closed.
func (c *Client) sendDirect(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := c.writeMessage(websocket.TextMessage, data); err != nil {
		logger.For("ws").Debug().Err(err).Str("client", c.id).Msg("reply failed")
	}
}

// WritePump writes hub messages and keepalive pings until send is closed or
// a write fails.
//
// When the hub closes send, WritePump writes a close frame and returns. The
// peer then closes its side, which ends ReadPump.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				_ = c.writeMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.writeMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.writeMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// writeMessage is the only path to conn writes.
func (c *Client) writeMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}
