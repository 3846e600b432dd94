package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"servizi-facili-be/internal/pkg/logger"
	"servizi-facili-be/internal/service"
	"servizi-facili-be/pkg/events"
)

// Hub fans UI actions out to the websocket clients of each assistant
// session. Multiple tabs may watch the same session.
type Hub struct {
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	dispatcher service.IDispatcherService
	logger     logger.ILogger
}

func NewHub(dispatcher service.IDispatcherService, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		dispatcher: dispatcher,
		logger:     log,
	}
}

// Run owns the client registry and the action-bus consumer. It returns when
// ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	go h.consumeActions(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionId] = append(h.clients[client.SessionId], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionId.String()})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionId]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionId] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionId]) == 0 {
					delete(h.clients, client.SessionId)
				}
			}
			h.mu.Unlock()
		}
	}
}

// consumeActions routes every published action to the clients of its
// session.
func (h *Hub) consumeActions(ctx context.Context) {
	messages, err := h.dispatcher.Subscribe(ctx)
	if err != nil {
		h.logger.Error("Hub", "Failed to subscribe to action bus", map[string]interface{}{"error": err.Error()})
		return
	}

	for msg := range messages {
		var action events.Action
		if err := json.Unmarshal(msg.Payload, &action); err != nil {
			h.logger.Warn("Hub", "Dropping malformed action payload", map[string]interface{}{"error": err.Error()})
			msg.Ack()
			continue
		}
		h.send(action.SessionId, msg.Payload)
		msg.Ack()
	}
}

func (h *Hub) send(sessionId uuid.UUID, payload []byte) {
	h.mu.RLock()
	clients := h.clients[sessionId]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{
				"session_id": sessionId.String(),
			})
			h.unregister <- client
		}
	}
}
