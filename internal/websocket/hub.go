package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"studymate-backend/internal/logging"
	"studymate-backend/internal/middleware"
	"studymate-backend/internal/models"
)

// MessageWorkspace carries the full workspace snapshot sent on connect.
const MessageWorkspace = "workspace"

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// conn serializes writes; gorilla connections allow one concurrent writer.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// SnapshotFunc returns the state a client sees when it connects.
type SnapshotFunc func(clientID string) models.Workspace

// Hub pushes workspace updates to every connection of a client. With a Redis
// client, updates go through pub/sub so any server instance can deliver them;
// without one they are delivered only to local connections.
type Hub struct {
	mu          sync.RWMutex
	connections map[string][]*conn
	redisClient *redis.Client
	snapshot    SnapshotFunc
	cancelFuncs map[string]context.CancelFunc
}

func NewHub(redisClient *redis.Client, snapshot SnapshotFunc) *Hub {
	return &Hub{
		connections: make(map[string][]*conn),
		redisClient: redisClient,
		snapshot:    snapshot,
		cancelFuncs: make(map[string]context.CancelFunc),
	}
}

func channelName(clientID string) string {
	return "workspace_updates:" + clientID
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientID, err := middleware.NormalizeClientID(r.URL.Query().Get("client_id"))
	if err != nil {
		http.Error(w, "client_id is too long", http.StatusBadRequest)
		return
	}
	if clientID == "" {
		http.Error(w, "client_id is required", http.StatusBadRequest)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.WithContext(r.Context()).WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	c := &conn{ws: ws}
	h.registerConnection(clientID, c)

	if h.snapshot != nil {
		if data, err := json.Marshal(models.WSMessage{Type: MessageWorkspace, Payload: h.snapshot(clientID)}); err == nil {
			c.write(data)
		}
	}

	go func() {
		defer h.unregisterConnection(clientID, c)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (h *Hub) registerConnection(clientID string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[clientID] = append(h.connections[clientID], c)

	if h.redisClient != nil && len(h.connections[clientID]) == 1 {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancelFuncs[clientID] = cancel
		go h.subscribeToPubSub(ctx, clientID)
	}

	logging.Logger().WithField("client_id", clientID).Infof("WebSocket connected (total: %d)", len(h.connections[clientID]))
}

func (h *Hub) unregisterConnection(clientID string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c.ws.Close()

	conns := h.connections[clientID]
	for i, existing := range conns {
		if existing == c {
			h.connections[clientID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}

	if len(h.connections[clientID]) == 0 {
		delete(h.connections, clientID)
		if cancel, ok := h.cancelFuncs[clientID]; ok {
			cancel()
			delete(h.cancelFuncs, clientID)
		}
	}

	logging.Logger().WithField("client_id", clientID).Info("WebSocket disconnected")
}

func (h *Hub) subscribeToPubSub(ctx context.Context, clientID string) {
	pubsub := h.redisClient.Subscribe(ctx, channelName(clientID))
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast(clientID, []byte(msg.Payload))
		}
	}
}

func (h *Hub) broadcast(clientID string, data []byte) {
	h.mu.RLock()
	conns := append([]*conn(nil), h.connections[clientID]...)
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.write(data); err != nil {
			logging.Logger().WithField("client_id", clientID).WithError(err).Debug("WebSocket write failed")
		}
	}
}

// Publish delivers msg to every connection of clientID. It never blocks the
// caller on a slow or failed delivery beyond one write per connection.
func (h *Hub) Publish(ctx context.Context, clientID string, msg models.WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		logging.WithContext(ctx).WithError(err).Warn("Failed to encode WebSocket message")
		return
	}

	if h.redisClient != nil {
		if err := h.redisClient.Publish(ctx, channelName(clientID), data).Err(); err != nil {
			logging.WithContext(ctx).WithError(err).Warn("Failed to publish workspace update")
		}
		return
	}
	h.broadcast(clientID, data)
}

// ConnectionCount reports the local connections of clientID.
func (h *Hub) ConnectionCount(clientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections[clientID])
}
