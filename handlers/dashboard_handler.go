package handlers

import (
	"net/http"

	"github.com/Dosada05/micro-tournaments/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetDashboard godoc
// @Summary Дашборд текущего игрока
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 401 {object} map[string]string "Неавторизован"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Load(r.Context(), session)
	if err != nil {
		// Клиент ушёл, отвечать некому.
		requestLogger(r).WithError(err).Debug("dashboard load abandoned")
		return
	}

	if err := writeJSON(w, http.StatusOK, dashboard, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetDashboardState godoc
// @Summary Состояние загрузки дашборда
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /dashboard/state [get]
func (h *DashboardHandler) GetDashboardState(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	state := h.dashboardService.State(session.PlayerID)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"state": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
