// Package ws carries the assistant widget over a WebSocket: the client
// sends chat messages, the server answers with canned replies after a
// short simulated typing delay.
package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/facgure/launchpad/internal/domain/chat"
	"github.com/facgure/launchpad/internal/infrastructure/logging"
	"github.com/facgure/launchpad/internal/infrastructure/monitoring"
	"github.com/facgure/launchpad/internal/shared/i18n"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// typingDelay simulates the assistant composing a reply
const typingDelay = 800 * time.Millisecond

// Message is the frame exchanged with the widget
type Message struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Locale  string `json:"locale,omitempty"`
}

// Handler manages WebSocket connections for the chat widget
type Handler struct {
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewHandler creates a new WebSocket handler
func NewHandler(logger *logging.Logger) *Handler {
	return &Handler{logger: logger}
}

// WithMetrics attaches monitoring
func (h *Handler) WithMetrics(metrics *monitoring.Metrics) *Handler {
	h.metrics = metrics
	return h
}

// HandleConnection upgrades the request and serves the conversation
// until the client disconnects
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.ChatConnections.Inc()
		defer h.metrics.ChatConnections.Dec()
	}

	reqCtx := c.Request.Context()
	locale := i18n.Normalize(c.Query("locale"))

	h.send(conn, Message{Type: "system", Content: chat.Greeting(locale)})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("WebSocket read ended", zap.Error(err))
			}
			return
		}

		switch msg.Type {
		case "chat":
			if msg.Locale != "" {
				locale = i18n.Normalize(msg.Locale)
			}
			if h.metrics != nil {
				h.metrics.ChatMessages.WithLabelValues("in").Inc()
			}

			h.send(conn, Message{Type: "typing"})

			// Simulated composition delay, cancelled when the
			// connection context ends so no reply fires against
			// a torn-down conversation.
			select {
			case <-time.After(typingDelay):
			case <-reqCtx.Done():
				return
			}

			h.send(conn, Message{
				Type:    "reply",
				Content: chat.Respond(locale, msg.Content),
				Locale:  string(locale),
			})
			if h.metrics != nil {
				h.metrics.ChatMessages.WithLabelValues("out").Inc()
			}
		case "ping":
			h.send(conn, Message{Type: "pong"})
		default:
			h.send(conn, Message{Type: "error", Content: "unknown message type"})
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, msg Message) {
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Debug("WebSocket write failed", zap.Error(err))
	}
}
