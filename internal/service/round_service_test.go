package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/internal/core/ports/mocks"
	"roulette-table-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRoundService(t *testing.T) (*RoundServiceImpl, *mocks.MockRoundRepository, *mocks.MockEventPublisher, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	roundRepo := mocks.NewMockRoundRepository(ctrl)
	events := mocks.NewMockEventPublisher(ctrl)
	svc := NewRoundService(roundRepo, events, zerolog.Nop())
	return svc, roundRepo, events, ctrl
}

func TestRoundService_GetOrCreate_ExistingRound(t *testing.T) {
	svc, roundRepo, _, ctrl := setupRoundService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	existing := &domain.Round{ID: uuid.New(), Sequence: 7, Phase: domain.PhaseBetting}
	roundRepo.EXPECT().FindBettingRound(ctx).Return(existing, nil)

	round, err := svc.GetOrCreateBettingRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing, round)
}

func TestRoundService_GetOrCreate_CreatesWhenNoneOpen(t *testing.T) {
	svc, roundRepo, events, ctrl := setupRoundService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	roundRepo.EXPECT().FindBettingRound(ctx).Return(nil, nil)
	roundRepo.EXPECT().NextSequence(ctx).Return(int64(8), nil)
	roundRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domain.Round) error {
			assert.Equal(t, int64(8), r.Sequence)
			assert.Equal(t, domain.PhaseBetting, r.Phase)
			assert.NotEqual(t, uuid.Nil, r.ID)
			return nil
		})
	events.EXPECT().Publish(ctx, gomock.Any())

	round, err := svc.GetOrCreateBettingRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), round.Sequence)
	assert.True(t, round.AcceptsBets())
}

func TestRoundService_GetOrCreate_LosesSequenceRace(t *testing.T) {
	svc, roundRepo, _, ctrl := setupRoundService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	winner := &domain.Round{ID: uuid.New(), Sequence: 9, Phase: domain.PhaseBetting}

	// First pass: no open round, creation loses the race.
	roundRepo.EXPECT().FindBettingRound(ctx).Return(nil, nil)
	roundRepo.EXPECT().NextSequence(ctx).Return(int64(9), nil)
	roundRepo.EXPECT().Create(ctx, gomock.Any()).Return(&ports.ErrDuplicateSequence{Sequence: 9})
	// Second pass: read the winner's round.
	roundRepo.EXPECT().FindBettingRound(ctx).Return(winner, nil)

	round, err := svc.GetOrCreateBettingRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, round.ID)
}

func TestRoundService_GetOrCreate_ReadRetriedOnce(t *testing.T) {
	svc, roundRepo, _, ctrl := setupRoundService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	existing := &domain.Round{ID: uuid.New(), Sequence: 3, Phase: domain.PhaseBetting}

	roundRepo.EXPECT().FindBettingRound(ctx).Return(nil, errors.New("connection reset"))
	roundRepo.EXPECT().FindBettingRound(ctx).Return(existing, nil)

	round, err := svc.GetOrCreateBettingRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, round.ID)
}

func TestRoundService_CompleteRound(t *testing.T) {
	svc, roundRepo, events, ctrl := setupRoundService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	roundID := uuid.New()
	open := &domain.Round{ID: roundID, Sequence: 5, Phase: domain.PhaseBetting}
	outcome := domain.Outcome{WinningNumber: 7, Color: "red", IsLow: true}

	roundRepo.EXPECT().GetByID(ctx, roundID).Return(open, nil)
	roundRepo.EXPECT().CompleteRound(ctx, roundID, outcome, gomock.Any()).Return(true, nil)
	events.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, e ports.Event) {
		assert.Equal(t, "round.completed", e.Kind)
	})

	round, err := svc.CompleteRound(ctx, roundID, outcome)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseCompleted, round.Phase)
	require.NotNil(t, round.Outcome)
	assert.Equal(t, 7, round.Outcome.WinningNumber)
	require.NotNil(t, round.SpunAt)
	assert.WithinDuration(t, time.Now(), *round.SpunAt, time.Minute)
}

func TestRoundService_CompleteRound_AlreadyCompleted(t *testing.T) {
	svc, roundRepo, _, ctrl := setupRoundService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	roundID := uuid.New()
	done := &domain.Round{
		ID:       roundID,
		Sequence: 5,
		Phase:    domain.PhaseCompleted,
		Outcome:  &domain.Outcome{WinningNumber: 12},
	}
	roundRepo.EXPECT().GetByID(ctx, roundID).Return(done, nil)

	_, err := svc.CompleteRound(ctx, roundID, domain.Outcome{WinningNumber: 7})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ROUND_001", appErr.Code)
}

func TestRoundService_CompleteRound_LosesCompletionRace(t *testing.T) {
	svc, roundRepo, _, ctrl := setupRoundService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	roundID := uuid.New()
	open := &domain.Round{ID: roundID, Sequence: 5, Phase: domain.PhaseBetting}

	roundRepo.EXPECT().GetByID(ctx, roundID).Return(open, nil)
	roundRepo.EXPECT().CompleteRound(ctx, roundID, gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := svc.CompleteRound(ctx, roundID, domain.Outcome{WinningNumber: 7})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ROUND_001", appErr.Code)
}

func TestRoundService_CompleteRound_NotFound(t *testing.T) {
	svc, roundRepo, _, ctrl := setupRoundService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	roundID := uuid.New()
	roundRepo.EXPECT().GetByID(ctx, roundID).Return(nil, nil)

	_, err := svc.CompleteRound(ctx, roundID, domain.Outcome{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ROUND_002", appErr.Code)
}
