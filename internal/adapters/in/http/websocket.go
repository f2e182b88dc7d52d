package http

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fooddelivery/internal/adapters/out/events"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 512
	sendBuffer     = 64
)

// Hub pushes domain events to websocket subscribers. It implements ports.EventPublisher,
// so it is plugged into the same fan-out as the brokers. A subscriber follows either one
// order or every order; who may follow what is decided before Serve is called.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.RWMutex
	clients map[*subscriber]struct{}
}

type subscriber struct {
	conn    *websocket.Conn
	send    chan []byte
	orderID *kernel.UUID
	once    sync.Once
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  logger.With("component", "ws_hub"),
		clients: make(map[*subscriber]struct{}),
	}
}

// Serve upgrades the request and blocks until the subscriber disconnects. A nil orderID
// subscribes to every order.
func (h *Hub) Serve(c echo.Context, orderID *kernel.UUID) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.WarnContext(c.Request().Context(), "Websocket upgrade failed", "error", err)
		return nil
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer), orderID: orderID}
	h.register(sub)

	go sub.writePump()
	sub.readPump()

	h.unregister(sub)
	return nil
}

// Publish never blocks on a slow subscriber: one whose buffer is full is disconnected.
func (h *Hub) Publish(_ context.Context, evts ...kernel.DomainEvent) error {
	for _, e := range evts {
		payload, err := events.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.EventName(), err)
		}

		h.mu.RLock()
		var slow []*subscriber
		for sub := range h.clients {
			if sub.orderID != nil && !sub.orderID.IsEqual(e.AggregateID()) {
				continue
			}
			select {
			case sub.send <- payload:
			default:
				slow = append(slow, sub)
			}
		}
		h.mu.RUnlock()

		for _, sub := range slow {
			h.unregister(sub)
		}
	}
	return nil
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*subscriber]struct{})
	h.mu.Unlock()

	for sub := range clients {
		sub.close()
	}
}

func (h *Hub) register(sub *subscriber) {
	h.mu.Lock()
	h.clients[sub] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(sub *subscriber) {
	h.mu.Lock()
	delete(h.clients, sub)
	h.mu.Unlock()
	sub.close()
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.send) })
}

// readPump discards client messages and returns when the connection drops.
func (s *subscriber) readPump() {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *subscriber) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
