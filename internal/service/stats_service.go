package service

import (
	"context"
	"sort"

	"roulette-table-service/internal/core/ports"
	"roulette-table-service/pkg/apperror"

	"github.com/google/uuid"
)

// hotColdCount is how many numbers each side of the analytics view shows.
const hotColdCount = 5

// statsService implements ports.StatsService.
type statsService struct {
	playerRepo      ports.PlayerRepository
	betRepo         ports.BetRepository
	roundRepo       ports.RoundRepository
	leaderboardSize int
	analyticsWindow int
}

// NewStatsService creates a new stats service.
func NewStatsService(
	playerRepo ports.PlayerRepository,
	betRepo ports.BetRepository,
	roundRepo ports.RoundRepository,
	leaderboardSize int,
	analyticsWindow int,
) ports.StatsService {
	return &statsService{
		playerRepo:      playerRepo,
		betRepo:         betRepo,
		roundRepo:       roundRepo,
		leaderboardSize: leaderboardSize,
		analyticsWindow: analyticsWindow,
	}
}

// PlayerOverview combines the ledger row with graded-wager statistics.
func (s *statsService) PlayerOverview(ctx context.Context, playerID uuid.UUID) (*ports.PlayerOverview, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}

	stats, err := s.betRepo.GradedStats(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	return &ports.PlayerOverview{
		Player:  player,
		Stats:   stats,
		WinRate: stats.WinRate,
	}, nil
}

// Leaderboard returns the top players by cumulative net winnings.
func (s *statsService) Leaderboard(ctx context.Context) ([]ports.LeaderboardEntry, error) {
	players, err := s.playerRepo.Leaderboard(ctx, s.leaderboardSize)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	entries := make([]ports.LeaderboardEntry, 0, len(players))
	for i := range players {
		entries = append(entries, ports.LeaderboardEntry{
			Username:    players[i].Username,
			NetWinnings: players[i].NetWinnings,
			GamesPlayed: players[i].GamesPlayed,
		})
	}
	return entries, nil
}

// Analytics computes hot and cold numbers over the recent outcome window.
// Entertainment only: every number is equally likely on the next spin.
func (s *statsService) Analytics(ctx context.Context) (*ports.Analytics, error) {
	outcomes, err := s.roundRepo.RecentOutcomes(ctx, s.analyticsWindow)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	counts := make(map[int]int, 37)
	for n := 0; n <= 36; n++ {
		counts[n] = 0
	}
	for _, o := range outcomes {
		counts[o.WinningNumber]++
	}

	freqs := make([]ports.NumberFrequency, 0, 37)
	for n := 0; n <= 36; n++ {
		freqs = append(freqs, ports.NumberFrequency{Number: n, Count: counts[n]})
	}

	// Hottest first; ties break on the lower number.
	sort.SliceStable(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Number < freqs[j].Number
	})

	hot := make([]ports.NumberFrequency, hotColdCount)
	copy(hot, freqs[:hotColdCount])
	cold := make([]ports.NumberFrequency, hotColdCount)
	copy(cold, freqs[len(freqs)-hotColdCount:])
	// Coldest first within the cold list.
	sort.SliceStable(cold, func(i, j int) bool {
		if cold[i].Count != cold[j].Count {
			return cold[i].Count < cold[j].Count
		}
		return cold[i].Number < cold[j].Number
	})

	return &ports.Analytics{
		Hot:        hot,
		Cold:       cold,
		TotalSpins: len(outcomes),
	}, nil
}

// GameState is the player-facing view of the current round: the open round
// if any, the player's pending wagers and the recent outcome history.
func (s *statsService) GameState(ctx context.Context, playerID uuid.UUID) (*ports.GameState, error) {
	round, err := s.roundRepo.FindBettingRound(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	state := &ports.GameState{Round: round}

	if round != nil {
		bets, err := s.betRepo.ListPending(ctx, playerID, round.ID)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		state.PendingBets = bets
		for i := range bets {
			state.TotalPot += bets[i].Amount
		}
	}

	outcomes, err := s.roundRepo.RecentOutcomes(ctx, 10)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	state.RecentOutcomes = outcomes

	return state, nil
}
