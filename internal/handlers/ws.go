package handlers

import (
	"net/http"

	"github.com/emrerecber/exportiq360/internal/logger"
	"github.com/emrerecber/exportiq360/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
	log      *logger.Logger
}

func NewWSHandler(hub *ws.Hub, allowedOrigin string, log *logger.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" || allowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		log: log,
	}
}

// ReportProgress upgrades the connection and streams report generation
// events for the assessment until the client disconnects.
func (h *WSHandler) ReportProgress(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	if assessmentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "assessment_id is required"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", "error", err)
		return
	}

	h.hub.AddConnection(assessmentID, conn)
	defer h.hub.RemoveConnection(assessmentID, conn)

	// Clients only listen; the read loop exists to detect disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
