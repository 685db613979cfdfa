package handlers

import (
	"net/http"

	"github.com/Dosada05/micro-tournaments/services"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(ns services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// ListNotifications godoc
// @Summary Уведомления текущего игрока
// @Tags notifications
// @Produce json
// @Param sort query string false "time - сортировать по близости к текущему моменту"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	sortByTime := r.URL.Query().Get("sort") == "time"
	notices := h.notificationService.ForPlayer(r.Context(), session.PlayerID, sortByTime)

	if err := writeJSON(w, http.StatusOK, jsonResponse{"notifications": notices}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
