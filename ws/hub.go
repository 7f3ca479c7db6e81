package ws

import (
	"encoding/json"
	"sync"

	"github.com/vishaldubey2210/portfolio/pkg/logger"
)

// Hub tracks connected visitors.
//
// Run is the only goroutine that touches the client set or mutates the
// counter. Connects and disconnects are applied in the order they reach the
// register and unregister channels, and each one is followed by a
// visitor_count broadcast to every client still connected. Other goroutines
// only read the counter, through ActiveVisitors.
//
// Lifecycle:
//
//	hub := ws.NewHub()
//	go hub.Run()
//	...
//	hub.Shutdown() // closes every client, returns after Run exits
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client

	visitors VisitorCounter

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewHub returns a hub with no clients. Call Run before Register.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run is the hub's event loop. Start it with `go hub.Run()`; it returns
// after Shutdown.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case <-h.stop:
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			logger.For("ws").Info().Msg("hub stopped")
			return
		}
	}
}

// Register adds a client. It returns false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client. It is a no-op once the hub has stopped.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Shutdown stops Run and closes every client's send channel, which makes
// each write pump send a close frame. It waits for Run to return.
func (h *Hub) Shutdown() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// ActiveVisitors returns the current visitor count.
func (h *Hub) ActiveVisitors() int64 {
	return h.visitors.Load()
}

func (h *Hub) addClient(client *Client) {
	h.clients[client] = true
	count := h.visitors.Inc()

	logger.For("ws").Info().Str("client", client.id).Int64("visitors", count).Msg("visitor connected")
	h.broadcastCount(count)
}

func (h *Hub) removeClient(client *Client) {
	if !h.clients[client] {
		return
	}
	h.drop(client)
	count := h.visitors.Load()

	logger.For("ws").Info().Str("client", client.id).Int64("visitors", count).Msg("visitor disconnected")
	h.broadcastCount(count)
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.visitors.Dec()
}

// broadcastCount sends count to every client. Clients whose buffer is full
// are dropped, and the lower count is broadcast to the rest.
func (h *Hub) broadcastCount(count int64) {
	for {
		data, err := json.Marshal(Event{
			Op:   OpVisitorCount,
			Data: CountData{Count: count},
		})
		if err != nil {
			logger.For("ws").Error().Err(err).Msg("failed to marshal visitor count")
			return
		}

		var slow []*Client
		for client := range h.clients {
			select {
			case client.send <- data:
			default:
				slow = append(slow, client)
			}
		}

		if len(slow) == 0 {
			return
		}
		for _, client := range slow {
			logger.For("ws").Warn().Str("client", client.id).Msg("send buffer full, dropping visitor")
			h.drop(client)
		}
		count = h.visitors.Load()
	}
}
