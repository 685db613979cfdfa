package handlers

import (
	"net/http"

	"github.com/Dosada05/micro-tournaments/realtime"
	"github.com/Dosada05/micro-tournaments/services"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub                 *realtime.Hub
	notificationService services.NotificationService
	upgrader            websocket.Upgrader
}

// NewWebSocketHandler принимает список разрешённых Origin; "*" разрешает любой.
func NewWebSocketHandler(hub *realtime.Hub, ns services.NotificationService, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub:                 hub,
		notificationService: ns,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

// ServeWs подключает игрока к его комнате и сразу отправляет текущие уведомления.
// Клиент подключается к /ws/notifications?token=...
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту.
		requestLogger(r).WithError(err).Warn("failed to upgrade websocket connection")
		return
	}

	room := session.PlayerID.String()
	client := realtime.NewClient(h.hub, conn, room)

	notices := h.notificationService.ForPlayer(r.Context(), session.PlayerID, false)
	if err := client.Queue(realtime.Message{Type: "notifications", Payload: notices, RoomID: room}); err != nil {
		requestLogger(r).WithError(err).Warn("failed to queue initial notifications")
	}

	if !h.hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
