// Package audience serves a read-only browser mirror of the deck. It follows
// the presenter's selection and never shows presenter notes.
package audience

import (
	"encoding/json"
	"sync"

	"seminar/internal/deck"
)

// SectionInfo is the JSON shape of a section on the API and the websocket.
type SectionInfo struct {
	ID    deck.SectionID `json:"id"`
	Label string         `json:"label"`
	Badge string         `json:"badge"`
}

// Info describes id. Unknown ids describe the intro section.
func Info(id deck.SectionID) SectionInfo {
	i := deck.IndexOf(id)
	if i < 0 {
		i = 0
	}
	s, _ := deck.At(i)
	return SectionInfo{ID: s.ID, Label: s.Label, Badge: deck.Badge(i)}
}

// Hub holds the presenter's current section and fans transitions out to
// connected viewers. It is safe for concurrent use.
type Hub struct {
	mu      sync.Mutex
	current deck.SectionID
	clients map[*client]struct{}
	closed  bool
}

// client is one viewer. send holds at most the latest undelivered update.
type client struct {
	send chan []byte
}

// NewHub starts on the first section.
func NewHub() *Hub {
	return &Hub{
		current: deck.First(),
		clients: make(map[*client]struct{}),
	}
}

// Current returns the section viewers are following.
func (h *Hub) Current() deck.SectionID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Observer returns a deck.Observer that publishes every transition.
func (h *Hub) Observer() deck.Observer {
	return func(_, to deck.SectionID) { h.Publish(to) }
}

// Publish makes id current and notifies viewers. It never blocks: a viewer
// that has not drained its previous update gets the newer one instead.
func (h *Hub) Publish(id deck.SectionID) {
	if !deck.Valid(id) {
		return
	}
	data, err := json.Marshal(Info(id))
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = id
	for c := range h.clients {
		c.offer(data)
	}
}

func (c *client) offer(data []byte) {
	select {
	case c.send <- data:
		return
	default:
	}
	select {
	case <-c.send:
	default:
	}
	select {
	case c.send <- data:
	default:
	}
}

// subscribe registers a viewer and queues the current section for it.
func (h *Hub) subscribe() (*client, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	c := &client{send: make(chan []byte, 1)}
	if data, err := json.Marshal(Info(h.current)); err == nil {
		c.send <- data
	}
	h.clients[c] = struct{}{}
	return c, true
}

func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every viewer and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
