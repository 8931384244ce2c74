package handler

import (
	"strings"
	"time"

	"roulette-table-service/internal/adapter/http/dto"
	"roulette-table-service/internal/adapter/http/middleware"
	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/pkg/apperror"
	"roulette-table-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameHandler handles betting and settlement endpoints.
type GameHandler struct {
	gameSvc ports.GameService
	parser  ports.BetParser
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameSvc ports.GameService, parser ports.BetParser) *GameHandler {
	return &GameHandler{gameSvc: gameSvc, parser: parser}
}

// PlaceBet handles POST /api/v1/bets.
func (h *GameHandler) PlaceBet(c *gin.Context) {
	playerID, ok := playerFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	bet, err := h.gameSvc.PlaceBet(c.Request.Context(), ports.PlaceBetRequest{
		PlayerID: playerID,
		Type:     domain.BetType(strings.ToLower(req.BetType)),
		Numbers:  req.Numbers,
		Amount:   req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toBetResponse(bet))
}

// ParseBet handles POST /api/v1/bets/parse. The parsed wager is returned to
// the client for confirmation; it is not placed.
func (h *GameHandler) ParseBet(c *gin.Context) {
	if _, ok := playerFromContext(c); !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ParseBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	parsed, err := h.parser.Parse(req.Command)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, parsed)
}

// Spin handles POST /api/v1/spin — one full settlement cycle for the caller.
func (h *GameHandler) Spin(c *gin.Context) {
	playerID, ok := playerFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	// Body is optional: a bare POST spins with a server-side draw.
	var req dto.SpinRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	result, err := h.gameSvc.Settle(c.Request.Context(), ports.SettlementRequest{
		PlayerID:   playerID,
		NumberHint: req.WinningNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettlementResponse(result))
}

// playerFromContext reads the authenticated player ID set by the JWT
// middleware.
func playerFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// toBetResponse converts domain.Bet to DTO.
func toBetResponse(b *domain.Bet) dto.BetResponse {
	return dto.BetResponse{
		ID:           b.ID.String(),
		RoundID:      b.RoundID.String(),
		BetType:      string(b.Type),
		Numbers:      b.Numbers,
		Amount:       b.Amount,
		Odds:         b.Odds,
		PotentialWin: b.PotentialWin,
		IsWinner:     b.IsWinner,
		Payout:       b.Payout,
		PlacedAt:     b.PlacedAt.Format(time.RFC3339),
	}
}

// toSettlementResponse converts a settlement result to DTO.
func toSettlementResponse(r *ports.SettlementResult) dto.SettlementResponse {
	bets := make([]dto.BetResponse, 0, len(r.Bets))
	for i := range r.Bets {
		bets = append(bets, toBetResponse(&r.Bets[i]))
	}
	return dto.SettlementResponse{
		RoundSequence: r.Round.Sequence,
		Outcome:       toOutcomeResponse(r.Outcome),
		Bets:          bets,
		TotalStaked:   r.TotalStaked,
		TotalPaid:     r.TotalPaid,
		NetResult:     r.NetResult,
		NewBalance:    r.NewBalance,
		Winners:       r.Winners,
		WinRate:       r.WinRate,
	}
}

func toOutcomeResponse(o domain.Outcome) dto.OutcomeResponse {
	return dto.OutcomeResponse{
		WinningNumber: o.WinningNumber,
		Color:         o.Color,
		IsEven:        o.IsEven,
		IsLow:         o.IsLow,
		Dozen:         o.Dozen,
		Column:        o.Column,
	}
}
