package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// roundCreateAttempts bounds the find-or-create loop. Losing the sequence
// race means another caller just created the round, so one re-read per
// attempt is enough in practice.
const roundCreateAttempts = 3

// RoundServiceImpl implements ports.RoundService.
type RoundServiceImpl struct {
	roundRepo ports.RoundRepository
	events    ports.EventPublisher
	log       zerolog.Logger
}

// NewRoundService creates a new RoundServiceImpl.
func NewRoundService(roundRepo ports.RoundRepository, events ports.EventPublisher, log zerolog.Logger) *RoundServiceImpl {
	return &RoundServiceImpl{
		roundRepo: roundRepo,
		events:    events,
		log:       log,
	}
}

// GetOrCreateBettingRound returns the round currently accepting bets,
// creating it when none exists. The sequence uniqueness constraint resolves
// concurrent creation: the loser re-reads the winner's round instead of
// creating a second one.
func (s *RoundServiceImpl) GetOrCreateBettingRound(ctx context.Context) (*domain.Round, error) {
	for attempt := 0; attempt < roundCreateAttempts; attempt++ {
		round, err := s.findBettingRound(ctx)
		if err != nil {
			return nil, apperror.ErrStorage(fmt.Errorf("find betting round: %w", err))
		}
		if round != nil {
			return round, nil
		}

		seq, err := s.roundRepo.NextSequence(ctx)
		if err != nil {
			return nil, apperror.ErrStorage(fmt.Errorf("next sequence: %w", err))
		}

		round = &domain.Round{
			ID:        uuid.New(),
			Sequence:  seq,
			Phase:     domain.PhaseBetting,
			CreatedAt: time.Now().UTC(),
		}
		err = s.roundRepo.Create(ctx, round)
		if err == nil {
			s.log.Info().Int64("sequence", seq).Str("round_id", round.ID.String()).Msg("betting round created")
			s.events.Publish(ctx, ports.Event{
				Kind:    "round.created",
				At:      round.CreatedAt,
				Payload: round,
			})
			return round, nil
		}

		var dup *ports.ErrDuplicateSequence
		if errors.As(err, &dup) {
			// Lost the race; loop around and read the winner's round.
			s.log.Debug().Int64("sequence", dup.Sequence).Msg("round sequence taken, re-reading")
			continue
		}
		return nil, apperror.ErrStorage(fmt.Errorf("create round: %w", err))
	}
	return nil, apperror.ErrStorage(fmt.Errorf("no betting round after %d attempts", roundCreateAttempts))
}

// CompleteRound attaches the outcome and flips the round to completed.
func (s *RoundServiceImpl) CompleteRound(ctx context.Context, roundID uuid.UUID, outcome domain.Outcome) (*domain.Round, error) {
	round, err := s.getRound(ctx, roundID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get round: %w", err))
	}
	if round == nil {
		return nil, apperror.ErrRoundNotFound()
	}
	if round.IsCompleted() {
		return nil, apperror.ErrInvalidTransition(string(round.Phase))
	}

	spunAt := time.Now().UTC()
	applied, err := s.roundRepo.CompleteRound(ctx, roundID, outcome, spunAt)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("complete round: %w", err))
	}
	if !applied {
		// Someone else completed it between read and write.
		return nil, apperror.ErrInvalidTransition(string(domain.PhaseCompleted))
	}

	round.Phase = domain.PhaseCompleted
	round.Outcome = &outcome
	round.SpunAt = &spunAt

	s.log.Info().
		Int64("sequence", round.Sequence).
		Int("winning_number", outcome.WinningNumber).
		Str("color", outcome.Color).
		Msg("round completed")
	s.events.Publish(ctx, ports.Event{
		Kind:    "round.completed",
		At:      spunAt,
		Payload: round,
	})
	return round, nil
}

// findBettingRound reads the open round, retrying the read once on a
// transient storage error.
func (s *RoundServiceImpl) findBettingRound(ctx context.Context) (*domain.Round, error) {
	round, err := s.roundRepo.FindBettingRound(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("betting round read failed, retrying once")
		round, err = s.roundRepo.FindBettingRound(ctx)
	}
	return round, err
}

// getRound reads one round by ID, retrying the read once on a transient
// storage error.
func (s *RoundServiceImpl) getRound(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	round, err := s.roundRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Msg("round read failed, retrying once")
		round, err = s.roundRepo.GetByID(ctx, id)
	}
	return round, err
}
