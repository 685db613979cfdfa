package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dosada05/micro-tournaments/services"
)

type AdminPlayerHandler struct {
	adminPlayerService services.AdminPlayerService
}

func NewAdminPlayerHandler(s services.AdminPlayerService) *AdminPlayerHandler {
	return &AdminPlayerHandler{adminPlayerService: s}
}

// ListPlayers godoc
// @Summary Список игроков (для администраторов)
// @Tags admin
// @Produce json
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} services.PlayerListResponse
// @Failure 403 {object} map[string]string "Нет прав"
// @Security BearerAuth
// @Router /admin/players [get]
func (h *AdminPlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.adminPlayerService.ListPlayers(r.Context(), toInt(q.Get("page"), 1), toInt(q.Get("limit"), 20))
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, res, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func toInt(s string, def int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return def
}
