package main

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type HubMessage struct {
	DocumentId string
	Payload    []byte
}

type WebsocketClient struct {
	hub        *WebsocketHub
	conn       *websocket.Conn
	documentId string
	send       chan []byte
}

// WebsocketHub keeps one room of connected clients per document and pushes every
// broadcast payload to the room. Clients only listen; edits go through the HTTP API.
type WebsocketHub struct {
	rooms      map[string]map[*WebsocketClient]bool
	broadcast  chan HubMessage
	register   chan *WebsocketClient
	unregister chan *WebsocketClient
	done       chan struct{}
	stopOnce   sync.Once

	countsMu sync.RWMutex
	counts   map[string]int

	upgrader websocket.Upgrader
	logger   *logrus.Entry
}

func NewWebsocketHub(logger *logrus.Entry) *WebsocketHub {
	return &WebsocketHub{
		rooms:      make(map[string]map[*WebsocketClient]bool),
		broadcast:  make(chan HubMessage, 64),
		register:   make(chan *WebsocketClient),
		unregister: make(chan *WebsocketClient),
		done:       make(chan struct{}),
		counts:     make(map[string]int),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger.WithField("component", "websocket_hub"),
	}
}

func (h *WebsocketHub) Run() {
	for {
		select {
		case client := <-h.register:
			if h.rooms[client.documentId] == nil {
				h.rooms[client.documentId] = make(map[*WebsocketClient]bool)
			}
			h.rooms[client.documentId][client] = true
			h.updateCount(client.documentId)
			h.logger.WithField("document", client.documentId).Debug("client registered")

		case client := <-h.unregister:
			h.removeClient(client)

		case message := <-h.broadcast:
			for client := range h.rooms[message.DocumentId] {
				select {
				case client.send <- message.Payload:
				default:
					// slow consumer
					h.removeClient(client)
				}
			}

		case <-h.done:
			for _, clients := range h.rooms {
				for client := range clients {
					h.removeClient(client)
				}
			}
			return
		}
	}
}

func (h *WebsocketHub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

func (h *WebsocketHub) Broadcast(documentId string, payload []byte) {
	select {
	case h.broadcast <- HubMessage{DocumentId: strings.ToLower(documentId), Payload: payload}:
	case <-h.done:
	}
}

func (h *WebsocketHub) Subscribers(documentId string) int {
	h.countsMu.RLock()
	defer h.countsMu.RUnlock()
	return h.counts[strings.ToLower(documentId)]
}

// ServeWs upgrades the request and attaches the connection to the document room.
func (h *WebsocketHub) ServeWs(documentId string, w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &WebsocketClient{
		hub:        h,
		conn:       conn,
		documentId: strings.ToLower(documentId),
		send:       make(chan []byte, 256),
	}

	select {
	case h.register <- client:
	case <-h.done:
		return conn.Close()
	}

	go client.writePump()
	go client.readPump()
	return nil
}

func (h *WebsocketHub) removeClient(client *WebsocketClient) {
	clients, ok := h.rooms[client.documentId]
	if !ok {
		return
	}
	if _, ok = clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.documentId)
	}
	h.updateCount(client.documentId)
	h.logger.WithField("document", client.documentId).Debug("client unregistered")
}

func (h *WebsocketHub) updateCount(documentId string) {
	h.countsMu.Lock()
	defer h.countsMu.Unlock()

	if count := len(h.rooms[documentId]); count > 0 {
		h.counts[documentId] = count
	} else {
		delete(h.counts, documentId)
	}
}

// readPump drains control frames until the peer goes away.
func (c *WebsocketClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).WithField("document", c.documentId).Warn("websocket read error")
			}
			return
		}
	}
}

func (c *WebsocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
