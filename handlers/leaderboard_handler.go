package handlers

import (
	"net/http"

	"github.com/Dosada05/micro-tournaments/services"
)

const defaultLeaderboardLimit = 50

type LeaderboardHandler struct {
	winnersService services.WinnersService
}

func NewLeaderboardHandler(ws services.WinnersService) *LeaderboardHandler {
	return &LeaderboardHandler{winnersService: ws}
}

// GetWinners godoc
// @Summary Победители прошлых турниров и зал славы
// @Tags winners
// @Produce json
// @Success 200 {object} models.WinnersPage
// @Router /winners [get]
func (h *LeaderboardHandler) GetWinners(w http.ResponseWriter, r *http.Request) {
	page := h.winnersService.Winners(r.Context())
	if err := writeJSON(w, http.StatusOK, page, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetLeaderboard godoc
// @Summary Общий рейтинг по победам
// @Tags winners
// @Produce json
// @Param limit query int false "Сколько позиций вернуть"
// @Success 200 {object} map[string]interface{}
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, defaultLeaderboardLimit)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.winnersService.Leaderboard(r.Context(), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
