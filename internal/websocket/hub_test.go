package websocket

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate-backend/internal/logging"
	"studymate-backend/internal/middleware"
	"studymate-backend/internal/models"
)

func dial(t *testing.T, srv *httptest.Server, clientID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?client_id=" + clientID
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func readMessage(t *testing.T, c *websocket.Conn) map[string]json.RawMessage {
	t.Helper()
	c.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := c.ReadMessage()
	require.NoError(t, err)
	var msg map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func newTestServer(h *Hub) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.HandleWebSocket)
	return httptest.NewServer(mux)
}

func TestHandleWebSocketRequiresClientID(t *testing.T) {
	h := NewHub(nil, nil)
	rr := httptest.NewRecorder()
	h.HandleWebSocket(rr, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleWebSocketRejectsOversizedClientID(t *testing.T) {
	h := NewHub(nil, nil)
	rr := httptest.NewRecorder()
	id := strings.Repeat("x", middleware.MaxClientIDLength+1)
	h.HandleWebSocket(rr, httptest.NewRequest(http.MethodGet, "/ws?client_id="+id, nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, h.ConnectionCount(id))
}

func TestHandleWebSocketTrimsClientID(t *testing.T) {
	logging.SetOutput(io.Discard)
	h := NewHub(nil, nil)
	srv := newTestServer(h)
	defer srv.Close()

	dial(t, srv, "%20c1%20")
	assert.Eventually(t, func() bool { return h.ConnectionCount("c1") == 1 }, time.Second, 10*time.Millisecond)
}

func TestSnapshotOnConnectAndLocalPublish(t *testing.T) {
	logging.SetOutput(io.Discard)
	h := NewHub(nil, func(clientID string) models.Workspace {
		return models.Workspace{ClientID: clientID, Language: models.LanguageHindi}
	})
	srv := newTestServer(h)
	defer srv.Close()

	c := dial(t, srv, "c1")
	other := dial(t, srv, "c2")

	first := readMessage(t, c)
	assert.JSONEq(t, `"workspace"`, string(first["type"]))
	assert.Contains(t, string(first["payload"]), `"client_id":"c1"`)
	readMessage(t, other)

	require.Eventually(t, func() bool { return h.ConnectionCount("c1") == 1 }, time.Second, 10*time.Millisecond)

	h.Publish(context.Background(), "c1", models.WSMessage{
		Type:    "operation_state",
		Payload: models.OperationState{Operation: models.OperationFacts, Status: models.StatusLoading},
	})

	msg := readMessage(t, c)
	assert.JSONEq(t, `"operation_state"`, string(msg["type"]))
	assert.Contains(t, string(msg["payload"]), `"status":"loading"`)

	other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "other clients receive nothing")
}

func TestDisconnectUnregisters(t *testing.T) {
	logging.SetOutput(io.Discard)
	h := NewHub(nil, nil)
	srv := newTestServer(h)
	defer srv.Close()

	c := dial(t, srv, "c1")
	require.Eventually(t, func() bool { return h.ConnectionCount("c1") == 1 }, time.Second, 10*time.Millisecond)

	c.Close()
	assert.Eventually(t, func() bool { return h.ConnectionCount("c1") == 0 }, time.Second, 10*time.Millisecond)
}
