package handler

import (
	"roulette-table-service/internal/adapter/http/dto"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/pkg/apperror"
	"roulette-table-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles reporting endpoints.
type StatsHandler struct {
	statsSvc ports.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsSvc ports.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// Me handles GET /api/v1/players/me.
func (h *StatsHandler) Me(c *gin.Context) {
	playerID, ok := playerFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	overview, err := h.statsSvc.PlayerOverview(c.Request.Context(), playerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PlayerResponse{
		ID:           overview.Player.ID.String(),
		Username:     overview.Player.Username,
		Balance:      overview.Player.Balance,
		TotalWagered: overview.Player.TotalWagered,
		NetWinnings:  overview.Player.NetWinnings,
		GamesPlayed:  overview.Player.GamesPlayed,
		WinRate:      overview.WinRate,
		BiggestWin:   overview.Stats.BiggestWin,
	})
}

// Leaderboard handles GET /api/v1/leaderboard.
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	entries, err := h.statsSvc.Leaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"leaderboard": entries})
}

// Analytics handles GET /api/v1/analytics.
func (h *StatsHandler) Analytics(c *gin.Context) {
	analytics, err := h.statsSvc.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, analytics)
}

// GameState handles GET /api/v1/game/state.
func (h *StatsHandler) GameState(c *gin.Context) {
	playerID, ok := playerFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	state, err := h.statsSvc.GameState(c.Request.Context(), playerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}
