package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"
	"example/storefront/internal/models"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server dispatches client actions to the repositories. Actions run one at a
// time across all connections, since repository writes are unguarded
// read-modify-write cycles.
type Server struct {
	store *kvstore.Store
	mu    sync.Mutex
}

// New returns a Server operating on store
func New(store *kvstore.Store) *Server {
	return &Server{store: store}
}

// HandleWebSocket handles incoming WebSocket connections
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Errorw("WebSocket upgrade error", "error", err, "remote_addr", r.RemoteAddr)
		return
	}
	defer conn.Close()

	clientAddr := conn.RemoteAddr().String()
	logger.Log.Infow("Client connected", "remote_addr", clientAddr)

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warnw("WebSocket error", "error", err, "remote_addr", clientAddr)
			}
			break
		}

		// Try to unmarshal as an array (batch) of messages first
		var batch []models.WSMessage
		if err := json.Unmarshal(p, &batch); err == nil && len(batch) > 0 {
			var responses []models.WSResponse
			for _, m := range batch {
				responses = append(responses, s.handleMessage(m, clientAddr))
			}
			if err := conn.WriteJSON(responses); err != nil {
				logger.Log.Errorw("Write error", "error", err, "remote_addr", clientAddr)
				break
			}
			continue
		}

		// Otherwise, try single message
		var msg models.WSMessage
		if err := json.Unmarshal(p, &msg); err != nil {
			logger.Log.Warnw("Invalid message format", "remote_addr", clientAddr, "error", err)
			response := models.WSResponse{Success: false, Error: "invalid message format"}
			if err := conn.WriteJSON(response); err != nil {
				logger.Log.Errorw("Write error", "error", err, "remote_addr", clientAddr)
				break
			}
			continue
		}

		response := s.handleMessage(msg, clientAddr)
		if err := conn.WriteJSON(response); err != nil {
			logger.Log.Errorw("Write error", "error", err, "remote_addr", clientAddr)
			break
		}
	}

	logger.Log.Infow("Client disconnected", "remote_addr", clientAddr)
}

// handleMessage processes a single WSMessage and returns a WSResponse
func (s *Server) handleMessage(msg models.WSMessage, clientAddr string) models.WSResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Log.Debugw("Processing action", "action", msg.Action, "remote_addr", clientAddr)

	handler, ok := actions[msg.Action]
	if !ok {
		logger.Log.Infow("unknown action", "action", msg.Action, "remote_addr", clientAddr)
		return models.WSResponse{Success: false, Error: "unknown action"}
	}

	data, err := handler(s, msg.Data)
	if err != nil {
		logger.Log.Infow("Action failed", "action", msg.Action, "error", err, "remote_addr", clientAddr)
		return models.WSResponse{Success: false, Error: err.Error()}
	}
	return models.WSResponse{Success: true, Data: data}
}
