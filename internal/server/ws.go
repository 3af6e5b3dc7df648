package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"PlanetDefense/internal/logging"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type outboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

func sendFrame(conn *websocket.Conn, msgType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(outboundMessage{Type: msgType, Payload: raw})
}

// serveWS streams progress frames for one mission. The client subscribes with
// /ws?mission=<id> and receives mission_update frames until the terminal
// frame, which carries the report.
func serveWS(h *handler, w http.ResponseWriter, r *http.Request) {
	missionID := r.URL.Query().Get("mission")
	if missionID == "" {
		http.Error(w, "missing mission query parameter", http.StatusBadRequest)
		return
	}

	updates, cancel, err := h.director.Subscribe(missionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn(r.Context(), "websocket upgrade failed", logging.Err(err))
		return
	}
	defer conn.Close()

	// Drain client frames so close handshakes and pongs are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			frameType := "mission_update"
			if update.Report != nil {
				frameType = "mission_report"
			}
			if err := sendFrame(conn, frameType, updateToDTO(update)); err != nil {
				h.log.Debug(r.Context(), "websocket write failed",
					logging.String("mission_id", missionID), logging.Err(err))
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
