// Package ws runs the live visitor channel: a websocket hub that counts
// connected visitors and pushes the count to every one of them.
//
// Every message in either direction is an Event encoded as {"op": ..., "d": ...}.
package ws

// Event is one websocket message.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
}

// Client → Server
const (
	OpHeartbeat  = "heartbeat"
	OpPageView   = "page_view"
	OpClickEvent = "click_event"
)

// Server → Client
const (
	OpHeartbeatAck = "heartbeat_ack"
	OpVisitorCount = "visitor_count"
)

// CountData is the payload of visitor_count.
type CountData struct {
	Count int64 `json:"count"`
}

// PageViewData is the payload of page_view.
type PageViewData struct {
	Page string `json:"page"`
}
