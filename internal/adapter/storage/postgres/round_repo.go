package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// RoundRepo implements ports.RoundRepository.
type RoundRepo struct {
	pool Pool
}

// NewRoundRepo creates a new RoundRepo.
func NewRoundRepo(pool Pool) *RoundRepo {
	return &RoundRepo{pool: pool}
}

// Create inserts a new round. The rounds table carries a unique constraint on
// sequence; a violation is surfaced as *ports.ErrDuplicateSequence so the
// caller can re-read the round a concurrent request created.
func (r *RoundRepo) Create(ctx context.Context, round *domain.Round) error {
	query := `INSERT INTO rounds (id, sequence, phase, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, round.ID, round.Sequence, round.Phase, round.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return &ports.ErrDuplicateSequence{Sequence: round.Sequence}
		}
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

// GetByID fetches a round by its UUID.
func (r *RoundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	query := `SELECT id, sequence, phase, winning_number, color, is_even, is_low, dozen, roulette_column, created_at, spun_at
		FROM rounds WHERE id = $1`

	return r.scanRound(r.pool.QueryRow(ctx, query, id))
}

// FindBettingRound returns the open betting round with the highest sequence,
// or nil when no round is accepting bets.
func (r *RoundRepo) FindBettingRound(ctx context.Context) (*domain.Round, error) {
	query := `SELECT id, sequence, phase, winning_number, color, is_even, is_low, dozen, roulette_column, created_at, spun_at
		FROM rounds WHERE phase = $1 ORDER BY sequence DESC LIMIT 1`

	return r.scanRound(r.pool.QueryRow(ctx, query, domain.PhaseBetting))
}

// NextSequence returns the next round sequence number.
func (r *RoundRepo) NextSequence(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(sequence), 0) + 1 FROM rounds`

	var seq int64
	if err := r.pool.QueryRow(ctx, query).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next round sequence: %w", err)
	}
	return seq, nil
}

// MarkSpinning closes the betting window for a round. The write is
// conditional on the phase still being betting; zero affected rows means a
// concurrent settlement already moved the round on.
func (r *RoundRepo) MarkSpinning(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE rounds SET phase = $2 WHERE id = $1 AND phase = $3`

	tag, err := r.pool.Exec(ctx, query, id, domain.PhaseSpinning, domain.PhaseBetting)
	if err != nil {
		return false, fmt.Errorf("mark round spinning: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CompleteRound records the draw outcome and moves the round to completed.
// The write is conditional on the round not already being completed, so a
// concurrent settlement that finished first makes this one report false.
func (r *RoundRepo) CompleteRound(ctx context.Context, id uuid.UUID, outcome domain.Outcome, spunAt time.Time) (bool, error) {
	query := `UPDATE rounds
		SET phase = $2,
			winning_number = $3,
			color = $4,
			is_even = $5,
			is_low = $6,
			dozen = $7,
			roulette_column = $8,
			spun_at = $9
		WHERE id = $1 AND phase <> $2`

	tag, err := r.pool.Exec(ctx, query,
		id, domain.PhaseCompleted,
		outcome.WinningNumber, outcome.Color, outcome.IsEven, outcome.IsLow,
		outcome.Dozen, outcome.Column, spunAt,
	)
	if err != nil {
		return false, fmt.Errorf("complete round: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RecentOutcomes returns the outcomes of the most recently completed rounds,
// newest first.
func (r *RoundRepo) RecentOutcomes(ctx context.Context, limit int) ([]domain.Outcome, error) {
	query := `SELECT winning_number, color, is_even, is_low, dozen, roulette_column
		FROM rounds WHERE phase = $1 ORDER BY sequence DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, domain.PhaseCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []domain.Outcome
	for rows.Next() {
		var o domain.Outcome
		if err := rows.Scan(&o.WinningNumber, &o.Color, &o.IsEven, &o.IsLow, &o.Dozen, &o.Column); err != nil {
			return nil, fmt.Errorf("scan outcome row: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcome rows: %w", err)
	}
	return outcomes, nil
}

// scanRound is a helper to scan a single row into a Round.
func (r *RoundRepo) scanRound(row pgx.Row) (*domain.Round, error) {
	round := &domain.Round{}
	var (
		winningNumber *int
		color         *string
		isEven        *bool
		isLow         *bool
		dozen         *int
		column        *int
	)
	err := row.Scan(
		&round.ID, &round.Sequence, &round.Phase,
		&winningNumber, &color, &isEven, &isLow, &dozen, &column,
		&round.CreatedAt, &round.SpunAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan round: %w", err)
	}
	if winningNumber != nil {
		round.Outcome = &domain.Outcome{
			WinningNumber: *winningNumber,
			Color:         *color,
			IsEven:        *isEven,
			IsLow:         *isLow,
			Dozen:         *dozen,
			Column:        *column,
		}
	}
	return round, nil
}
