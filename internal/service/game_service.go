package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/internal/roulette"
	"roulette-table-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GameServiceImpl implements ports.GameService. It owns the two hot paths
// of the table: accepting wagers and running the settlement cycle.
type GameServiceImpl struct {
	playerRepo ports.PlayerRepository
	betRepo    ports.BetRepository
	roundRepo  ports.RoundRepository
	roundSvc   ports.RoundService
	events     ports.EventPublisher
	maxBet     int64
	log        zerolog.Logger
}

// NewGameService creates a new GameServiceImpl.
func NewGameService(
	playerRepo ports.PlayerRepository,
	betRepo ports.BetRepository,
	roundRepo ports.RoundRepository,
	roundSvc ports.RoundService,
	events ports.EventPublisher,
	maxBet int64,
	log zerolog.Logger,
) *GameServiceImpl {
	return &GameServiceImpl{
		playerRepo: playerRepo,
		betRepo:    betRepo,
		roundRepo:  roundRepo,
		roundSvc:   roundSvc,
		events:     events,
		maxBet:     maxBet,
		log:        log,
	}
}

// PlaceBet validates and records one wager in the current betting round.
// The stake is checked against the balance net of the player's other
// pending stakes in the round, so the aggregate exposure never exceeds
// what the ledger can cover at settlement.
func (s *GameServiceImpl) PlaceBet(ctx context.Context, req ports.PlaceBetRequest) (*domain.Bet, error) {
	player, err := s.getPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}

	round, err := s.roundSvc.GetOrCreateBettingRound(ctx)
	if err != nil {
		return nil, err
	}
	if !round.AcceptsBets() {
		return nil, apperror.ErrRoundClosed()
	}

	pending, err := s.listPending(ctx, req.PlayerID, round.ID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("list pending bets: %w", err))
	}
	var pendingStake int64
	for i := range pending {
		pendingStake += pending[i].Amount
	}

	if err := roulette.ValidateBet(req.Type, req.Numbers, req.Amount, player.Balance-pendingStake, s.maxBet); err != nil {
		return nil, err
	}

	odds, _ := roulette.Odds(req.Type)
	bet := &domain.Bet{
		ID:           uuid.New(),
		PlayerID:     req.PlayerID,
		RoundID:      round.ID,
		Type:         req.Type,
		Numbers:      req.Numbers,
		Amount:       req.Amount,
		Odds:         odds,
		PotentialWin: roulette.PotentialWinnings(req.Type, req.Amount),
		PlacedAt:     time.Now().UTC(),
	}

	if err := s.betRepo.Create(ctx, bet); err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("create bet: %w", err))
	}

	s.log.Info().
		Str("player_id", req.PlayerID.String()).
		Str("bet_type", string(req.Type)).
		Int64("amount", req.Amount).
		Int64("sequence", round.Sequence).
		Msg("bet placed")
	s.events.Publish(ctx, ports.Event{Kind: "bet.placed", At: bet.PlacedAt, Payload: bet})

	return bet, nil
}

// Settle runs one full resolution cycle for the player's pending bets. The
// wagers belong to exactly one round per cycle: an open round is completed
// with a fresh draw (or the caller's number hint), while wagers left behind
// in a round another settlement already completed are graded against that
// round's recorded outcome. The ledger write is a single compare-and-swap
// against the freshest balance; wager persistence failures after a
// successful balance write trigger a compensating restore.
func (s *GameServiceImpl) Settle(ctx context.Context, req ports.SettlementRequest) (*ports.SettlementResult, error) {
	player, err := s.getPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}

	bets, err := s.listPendingByPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("list pending bets: %w", err))
	}
	if len(bets) == 0 {
		return nil, apperror.ErrEmptySettlement()
	}

	// One round per cycle, oldest wagers first. Anything staked in a later
	// round settles on the next call.
	roundID := bets[0].RoundID
	n := 0
	for i := range bets {
		if bets[i].RoundID == roundID {
			bets[n] = bets[i]
			n++
		}
	}
	bets = bets[:n]

	var totalStaked int64
	for i := range bets {
		totalStaked += bets[i].Amount
	}
	// The freshest balance must cover the full staked amount before anything
	// moves. Two placements racing each other can both pass the exposure
	// check at placement time; this read is the authoritative gate.
	if player.Balance < totalStaked {
		return nil, apperror.ErrInsufficientFunds()
	}

	round, outcome, err := s.bindOutcome(ctx, roundID, req.NumberHint)
	if err != nil {
		return nil, err
	}

	// Grade every wager against the one outcome. Pure and deterministic:
	// re-grading the same bets yields identical results.
	gradedAt := time.Now().UTC()
	var totalPaid int64
	winners := 0
	for i := range bets {
		g := roulette.Grade(&bets[i], outcome)
		isWinner := g.IsWinner
		payout := g.TotalPayout
		bets[i].IsWinner = &isWinner
		bets[i].Payout = &payout
		bets[i].GradedAt = &gradedAt
		totalPaid += payout
		if isWinner {
			winners++
		}
	}
	net := totalPaid - totalStaked

	newBalance, err := s.writeLedger(ctx, player, totalStaked, totalPaid, net)
	if err != nil {
		return nil, err
	}

	if err := s.betRepo.SaveGraded(ctx, bets); err != nil {
		// The balance moved but the graded wagers did not persist. Put the
		// money back; if even that fails the ledger needs a human.
		restored, restoreErr := s.playerRepo.RestoreBalance(ctx, req.PlayerID, newBalance, newBalance-net, totalStaked, net)
		if restoreErr != nil || !restored {
			s.log.Error().Err(err).AnErr("restore_err", restoreErr).
				Str("player_id", req.PlayerID.String()).
				Msg("settlement compensation failed, ledger inconsistent")
			return nil, apperror.ErrPartialSettlement(fmt.Errorf("save graded bets: %w (compensation failed)", err))
		}
		s.log.Warn().Err(err).Str("player_id", req.PlayerID.String()).Msg("settlement rolled back")
		return nil, apperror.ErrPartialSettlement(fmt.Errorf("save graded bets: %w", err))
	}

	winRate := s.lifetimeWinRate(ctx, req.PlayerID)

	result := &ports.SettlementResult{
		Round:       round,
		Outcome:     outcome,
		Bets:        bets,
		TotalStaked: totalStaked,
		TotalPaid:   totalPaid,
		NetResult:   net,
		NewBalance:  newBalance,
		Winners:     winners,
		WinRate:     winRate,
	}

	s.log.Info().
		Str("player_id", req.PlayerID.String()).
		Int64("sequence", round.Sequence).
		Int("winning_number", outcome.WinningNumber).
		Int64("net_result", net).
		Int64("new_balance", newBalance).
		Msg("settlement complete")
	s.events.Publish(ctx, ports.Event{Kind: "round.settled", At: gradedAt, Payload: result})

	return result, nil
}

// bindOutcome fixes the outcome the round's wagers are graded against. An
// open round is moved to spinning and completed with the resolved outcome; a
// round already completed keeps its recorded outcome and the hint is
// ignored, so every wager in the round grades against the same draw.
func (s *GameServiceImpl) bindOutcome(ctx context.Context, roundID uuid.UUID, hint *int) (*domain.Round, domain.Outcome, error) {
	round, err := s.getRound(ctx, roundID)
	if err != nil {
		return nil, domain.Outcome{}, apperror.ErrStorage(fmt.Errorf("get round: %w", err))
	}
	if round == nil {
		return nil, domain.Outcome{}, apperror.ErrRoundNotFound()
	}
	if round.IsCompleted() {
		if round.Outcome == nil {
			return nil, domain.Outcome{}, apperror.ErrStorage(fmt.Errorf("round %s completed without an outcome", round.ID))
		}
		return round, *round.Outcome, nil
	}

	outcome, err := s.resolveOutcome(hint)
	if err != nil {
		return nil, domain.Outcome{}, err
	}

	if round.AcceptsBets() {
		// Close the betting window before the draw. Not applying means a
		// concurrent settlement got there first; the conditional completion
		// below decides who records the outcome.
		if _, err := s.roundRepo.MarkSpinning(ctx, roundID); err != nil {
			return nil, domain.Outcome{}, apperror.ErrStorage(fmt.Errorf("mark round spinning: %w", err))
		}
	}

	completed, err := s.roundSvc.CompleteRound(ctx, roundID, outcome)
	if err == nil {
		return completed, outcome, nil
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != "ROUND_001" {
		return nil, domain.Outcome{}, err
	}

	// Lost the completion race; the recorded outcome binds.
	round, rerr := s.getRound(ctx, roundID)
	if rerr != nil {
		return nil, domain.Outcome{}, apperror.ErrStorage(fmt.Errorf("re-read round: %w", rerr))
	}
	if round == nil || round.Outcome == nil {
		return nil, domain.Outcome{}, apperror.ErrStorage(fmt.Errorf("round %s has no recorded outcome", roundID))
	}
	return round, *round.Outcome, nil
}

// resolveOutcome draws the winning number, or re-derives the outcome from a
// hint the client already displayed. Only the numeric value of the hint is
// trusted; all descriptive attributes come from classification.
func (s *GameServiceImpl) resolveOutcome(hint *int) (domain.Outcome, error) {
	if hint == nil {
		return roulette.Spin(), nil
	}
	outcome, err := roulette.Classify(*hint)
	if err != nil {
		return domain.Outcome{}, apperror.Validation(fmt.Sprintf("winning number %d is not on the wheel", *hint))
	}
	return outcome, nil
}

// writeLedger applies one settlement to the player's balance with a
// conditional write. A conflicting write from another settlement triggers a
// single re-read and retry before giving up. Every attempt re-checks that
// the balance it is about to swap against still covers the staked amount;
// a shortfall rejects the settlement instead of writing a negative balance.
func (s *GameServiceImpl) writeLedger(ctx context.Context, player *domain.Player, staked, paid, net int64) (int64, error) {
	expected := player.Balance
	for attempt := 0; attempt < 2; attempt++ {
		if expected < staked {
			return 0, apperror.ErrInsufficientFunds()
		}
		newBalance := expected + net
		applied, err := s.playerRepo.SettleBalance(ctx, player.ID, expected, newBalance, staked, net)
		if err != nil {
			return 0, apperror.ErrStorage(fmt.Errorf("settle balance: %w", err))
		}
		if applied {
			return newBalance, nil
		}

		fresh, err := s.getPlayer(ctx, player.ID)
		if err != nil {
			return 0, apperror.ErrStorage(fmt.Errorf("re-read player: %w", err))
		}
		if fresh == nil {
			return 0, apperror.ErrNotFound("player")
		}
		expected = fresh.Balance
	}
	return 0, apperror.ErrBalanceConflict()
}

// lifetimeWinRate reads the player's graded-wager aggregate. Reporting only:
// a failed read degrades to zero rather than failing the settlement.
func (s *GameServiceImpl) lifetimeWinRate(ctx context.Context, playerID uuid.UUID) float64 {
	stats, err := s.betRepo.GradedStats(ctx, playerID)
	if err != nil {
		stats, err = s.betRepo.GradedStats(ctx, playerID)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("player_id", playerID.String()).Msg("win rate read failed")
		return 0
	}
	return stats.WinRate
}

// getPlayer reads one player, retrying the read once on a transient
// storage error.
func (s *GameServiceImpl) getPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Msg("player read failed, retrying once")
		player, err = s.playerRepo.GetByID(ctx, id)
	}
	return player, err
}

// getRound reads one round by ID, retrying the read once.
func (s *GameServiceImpl) getRound(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	round, err := s.roundRepo.GetByID(ctx, id)
	if err != nil {
		round, err = s.roundRepo.GetByID(ctx, id)
	}
	return round, err
}

// listPendingByPlayer reads the player's ungraded bets across all rounds,
// retrying the read once.
func (s *GameServiceImpl) listPendingByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Bet, error) {
	bets, err := s.betRepo.ListPendingByPlayer(ctx, playerID)
	if err != nil {
		bets, err = s.betRepo.ListPendingByPlayer(ctx, playerID)
	}
	return bets, err
}

// listPending reads the player's ungraded bets, retrying the read once.
func (s *GameServiceImpl) listPending(ctx context.Context, playerID, roundID uuid.UUID) ([]domain.Bet, error) {
	bets, err := s.betRepo.ListPending(ctx, playerID, roundID)
	if err != nil {
		bets, err = s.betRepo.ListPending(ctx, playerID, roundID)
	}
	return bets, err
}
