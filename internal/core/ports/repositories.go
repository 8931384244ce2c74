package ports

import (
	"context"
	"time"

	"roulette-table-service/internal/core/domain"

	"github.com/google/uuid"
)

// PlayerRepository defines persistence operations for player ledgers.
// All operations are atomic at the single-row level; the engine never
// assumes cross-row transactions are available.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetByUsername(ctx context.Context, username string) (*domain.Player, error)
	// SettleBalance performs the compare-and-swap ledger write of one
	// settlement: balance moves from expectedBalance to newBalance and the
	// cumulative counters advance, but only if the stored balance still
	// equals expectedBalance. Returns false without mutating when another
	// settlement won the race. Balance is never written as a relative
	// increment expression.
	SettleBalance(ctx context.Context, id uuid.UUID, expectedBalance, newBalance, staked, net int64) (bool, error)
	// RestoreBalance is the compensating write used when wager persistence
	// fails after the balance write succeeded. It reverses exactly one
	// SettleBalance call, conditional on the balance it produced.
	RestoreBalance(ctx context.Context, id uuid.UUID, expectedBalance, restoredBalance, staked, net int64) (bool, error)
	// Leaderboard returns the top players by cumulative net winnings.
	Leaderboard(ctx context.Context, limit int) ([]domain.Player, error)
}

// RoundRepository defines persistence operations for betting rounds.
// A uniqueness constraint on the sequence number makes concurrent round
// creation race-safe: the second creator gets ErrDuplicateSequence and
// re-reads instead of duplicating.
type RoundRepository interface {
	Create(ctx context.Context, round *domain.Round) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	// FindBettingRound returns the round currently in phase betting,
	// or nil when none exists.
	FindBettingRound(ctx context.Context) (*domain.Round, error)
	// NextSequence returns one past the highest sequence ever allocated.
	NextSequence(ctx context.Context) (int64, error)
	// MarkSpinning closes the betting window: the phase moves from betting
	// to spinning, conditional on the round still being in phase betting.
	// Returns false without mutating when a concurrent settlement already
	// moved it.
	MarkSpinning(ctx context.Context, id uuid.UUID) (bool, error)
	// CompleteRound attaches the outcome and flips the phase to completed.
	// The write is conditional on the round not already being completed;
	// returns false without mutating when it is, so a prior outcome is
	// never overwritten.
	CompleteRound(ctx context.Context, id uuid.UUID, outcome domain.Outcome, spunAt time.Time) (bool, error)
	// RecentOutcomes returns the outcomes of the most recently completed
	// rounds, newest first.
	RecentOutcomes(ctx context.Context, limit int) ([]domain.Outcome, error)
}

// BetRepository defines persistence operations for wagers.
type BetRepository interface {
	Create(ctx context.Context, bet *domain.Bet) error
	// ListPending returns the player's ungraded bets in the given round.
	ListPending(ctx context.Context, playerID, roundID uuid.UUID) ([]domain.Bet, error)
	// ListPendingByPlayer returns every ungraded bet the player holds,
	// regardless of round, oldest first. Settlement uses it to find wagers
	// left behind in a round another settlement already completed.
	ListPendingByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Bet, error)
	// SaveGraded persists the grading outcome of each bet in the batch.
	// Grading fields are written exactly once per bet.
	SaveGraded(ctx context.Context, bets []domain.Bet) error
	// GradedStats aggregates the player's lifetime graded wagers for
	// win-rate reporting. Bets whose grading fields are unset do not count.
	GradedStats(ctx context.Context, playerID uuid.UUID) (*domain.PlayerStats, error)
}

// ErrDuplicateSequence is returned by RoundRepository.Create when the
// sequence number is already taken; the caller re-reads the betting round
// rather than creating a duplicate.
type ErrDuplicateSequence struct {
	Sequence int64
}

func (e *ErrDuplicateSequence) Error() string {
	return "round sequence already exists"
}
