package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Player Repo ---

type inMemoryPlayerRepo struct {
	mu      sync.RWMutex
	players map[uuid.UUID]*domain.Player
}

func newInMemoryPlayerRepo() *inMemoryPlayerRepo {
	return &inMemoryPlayerRepo{players: make(map[uuid.UUID]*domain.Player)}
}

func (r *inMemoryPlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.players {
		if existing.Username == p.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *p
	r.players[p.ID] = &cp
	return nil
}

func (r *inMemoryPlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPlayerRepo) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.players {
		if p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// SettleBalance mirrors the conditional single-row UPDATE: the write applies
// only while the stored balance still equals expectedBalance.
func (r *inMemoryPlayerRepo) SettleBalance(ctx context.Context, id uuid.UUID, expectedBalance, newBalance, staked, net int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok || p.Balance != expectedBalance {
		return false, nil
	}
	p.Balance = newBalance
	p.TotalWagered += staked
	p.NetWinnings += net
	p.GamesPlayed++
	p.UpdatedAt = time.Now()
	return true, nil
}

func (r *inMemoryPlayerRepo) RestoreBalance(ctx context.Context, id uuid.UUID, expectedBalance, restoredBalance, staked, net int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok || p.Balance != expectedBalance {
		return false, nil
	}
	p.Balance = restoredBalance
	p.TotalWagered -= staked
	p.NetWinnings -= net
	p.GamesPlayed--
	p.UpdatedAt = time.Now()
	return true, nil
}

func (r *inMemoryPlayerRepo) Leaderboard(ctx context.Context, limit int) ([]domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Player
	for _, p := range r.players {
		if p.GamesPlayed > 0 {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetWinnings != out[j].NetWinnings {
			return out[i].NetWinnings > out[j].NetWinnings
		}
		return out[i].Username < out[j].Username
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Round Repo ---

type inMemoryRoundRepo struct {
	mu     sync.RWMutex
	rounds map[uuid.UUID]*domain.Round
	bySeq  map[int64]uuid.UUID
}

func newInMemoryRoundRepo() *inMemoryRoundRepo {
	return &inMemoryRoundRepo{
		rounds: make(map[uuid.UUID]*domain.Round),
		bySeq:  make(map[int64]uuid.UUID),
	}
}

// Create enforces sequence uniqueness the way the UNIQUE constraint does.
func (r *inMemoryRoundRepo) Create(ctx context.Context, round *domain.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.bySeq[round.Sequence]; taken {
		return &ports.ErrDuplicateSequence{Sequence: round.Sequence}
	}
	cp := *round
	r.rounds[round.ID] = &cp
	r.bySeq[round.Sequence] = round.ID
	return nil
}

func (r *inMemoryRoundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	round, ok := r.rounds[id]
	if !ok {
		return nil, nil
	}
	cp := *round
	return &cp, nil
}

func (r *inMemoryRoundRepo) FindBettingRound(ctx context.Context) (*domain.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *domain.Round
	for _, round := range r.rounds {
		if round.Phase != domain.PhaseBetting {
			continue
		}
		if best == nil || round.Sequence > best.Sequence {
			best = round
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (r *inMemoryRoundRepo) NextSequence(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for seq := range r.bySeq {
		if seq > max {
			max = seq
		}
	}
	return max + 1, nil
}

// MarkSpinning flips betting -> spinning, conditional on the phase the way
// the single-row UPDATE is.
func (r *inMemoryRoundRepo) MarkSpinning(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	round, ok := r.rounds[id]
	if !ok || round.Phase != domain.PhaseBetting {
		return false, nil
	}
	round.Phase = domain.PhaseSpinning
	return true, nil
}

func (r *inMemoryRoundRepo) CompleteRound(ctx context.Context, id uuid.UUID, outcome domain.Outcome, spunAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	round, ok := r.rounds[id]
	if !ok || round.Phase == domain.PhaseCompleted {
		return false, nil
	}
	o := outcome
	round.Phase = domain.PhaseCompleted
	round.Outcome = &o
	round.SpunAt = &spunAt
	return true, nil
}

func (r *inMemoryRoundRepo) RecentOutcomes(ctx context.Context, limit int) ([]domain.Outcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var completed []*domain.Round
	for _, round := range r.rounds {
		if round.Phase == domain.PhaseCompleted && round.Outcome != nil {
			completed = append(completed, round)
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].Sequence > completed[j].Sequence
	})
	if len(completed) > limit {
		completed = completed[:limit]
	}
	out := make([]domain.Outcome, 0, len(completed))
	for _, round := range completed {
		out = append(out, *round.Outcome)
	}
	return out, nil
}

// --- In-Memory Bet Repo ---

type inMemoryBetRepo struct {
	mu   sync.RWMutex
	bets map[uuid.UUID]*domain.Bet
}

func newInMemoryBetRepo() *inMemoryBetRepo {
	return &inMemoryBetRepo{bets: make(map[uuid.UUID]*domain.Bet)}
}

func (r *inMemoryBetRepo) Create(ctx context.Context, b *domain.Bet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bets[b.ID] = &cp
	return nil
}

func (r *inMemoryBetRepo) ListPending(ctx context.Context, playerID, roundID uuid.UUID) ([]domain.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Bet
	for _, b := range r.bets {
		if b.PlayerID == playerID && b.RoundID == roundID && b.IsWinner == nil {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PlacedAt.Before(out[j].PlacedAt)
	})
	return out, nil
}

func (r *inMemoryBetRepo) ListPendingByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Bet
	for _, b := range r.bets {
		if b.PlayerID == playerID && b.IsWinner == nil {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PlacedAt.Before(out[j].PlacedAt)
	})
	return out, nil
}

func (r *inMemoryBetRepo) SaveGraded(ctx context.Context, bets []domain.Bet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range bets {
		stored, ok := r.bets[bets[i].ID]
		if !ok {
			return fmt.Errorf("bet not found: %s", bets[i].ID)
		}
		if stored.IsWinner != nil {
			continue // already graded, grading is write-once
		}
		stored.IsWinner = bets[i].IsWinner
		stored.Payout = bets[i].Payout
		stored.GradedAt = bets[i].GradedAt
	}
	return nil
}

func (r *inMemoryBetRepo) GradedStats(ctx context.Context, playerID uuid.UUID) (*domain.PlayerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &domain.PlayerStats{}
	for _, b := range r.bets {
		if b.PlayerID != playerID || b.IsWinner == nil {
			continue
		}
		stats.GradedBets++
		if *b.IsWinner {
			stats.WonBets++
			if b.Payout != nil {
				stats.TotalWon += *b.Payout
				if *b.Payout > stats.BiggestWin {
					stats.BiggestWin = *b.Payout
				}
			}
		}
	}
	if stats.GradedBets > 0 {
		rate := float64(stats.WonBets) / float64(stats.GradedBets) * 100
		stats.WinRate = float64(int64(rate*100+0.5)) / 100
	}
	return stats, nil
}

// failingBetRepo wraps a bet repo and fails SaveGraded a set number of times.
// Used to force the settlement compensation path.
type failingBetRepo struct {
	*inMemoryBetRepo
	mu       sync.Mutex
	failures int
}

func (r *failingBetRepo) SaveGraded(ctx context.Context, bets []domain.Bet) error {
	r.mu.Lock()
	if r.failures > 0 {
		r.failures--
		r.mu.Unlock()
		return fmt.Errorf("simulated storage failure")
	}
	r.mu.Unlock()
	return r.inMemoryBetRepo.SaveGraded(ctx, bets)
}

// noopPublisher discards events.
type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event ports.Event) {}
