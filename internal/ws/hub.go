package ws

import (
	"encoding/json"
	"sync"

	"github.com/emrerecber/exportiq360/internal/logger"

	"github.com/gorilla/websocket"
)

// Message is the wire format pushed to listeners, e.g.
// {"type":"report_progress","data":{...}}.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans report-generation events out to the websocket clients
// watching an assessment.
type Hub struct {
	mu          sync.RWMutex
	assessments map[string]map[*websocket.Conn]bool
	log         *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		assessments: make(map[string]map[*websocket.Conn]bool),
		log:         log,
	}
}

func (h *Hub) AddConnection(assessmentID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.assessments[assessmentID] == nil {
		h.assessments[assessmentID] = make(map[*websocket.Conn]bool)
	}
	h.assessments[assessmentID][conn] = true
	h.log.Debug("ws client connected", "assessment_id", assessmentID, "total", len(h.assessments[assessmentID]))
}

func (h *Hub) RemoveConnection(assessmentID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.assessments[assessmentID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.assessments, assessmentID)
		}
		h.log.Debug("ws client disconnected", "assessment_id", assessmentID)
	}
}

// Broadcast is safe for concurrent use; report generation fires progress
// events from parallel workers. The write lock both guards the map and
// serializes writes, which gorilla connections require.
func (h *Hub) Broadcast(assessmentID string, message Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.Error("ws marshal failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.assessments[assessmentID]
	if !ok {
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Debug("ws write failed, dropping client", "error", err)
			conn.Close()
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(h.assessments, assessmentID)
	}
}
