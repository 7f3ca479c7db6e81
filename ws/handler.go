package ws

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vishaldubey2210/portfolio/pkg/logger"
)

// Handler upgrades GET /ws. The channel is public; no session is needed.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler builds the upgrade handler. allowedOrigins follows the CORS
// setting: "*" accepts any Origin.
func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// originChecker accepts requests without an Origin header (non-browser
// clients) and browser requests from the allowed list.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}

// HandleConnection upgrades the request, registers the visitor and blocks
// in the read pump until the connection closes.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.For("ws").Debug().Err(err).Str("remote", r.RemoteAddr).Msg("upgrade failed")
		return
	}

	client := newClient(h.hub, conn, uuid.NewString())
	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	client.ReadPump()
}
