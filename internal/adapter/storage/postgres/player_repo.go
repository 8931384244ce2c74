package postgres

import (
	"context"
	"errors"
	"fmt"

	"roulette-table-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlayerRepo implements ports.PlayerRepository.
type PlayerRepo struct {
	pool Pool
}

// NewPlayerRepo creates a new PlayerRepo.
func NewPlayerRepo(pool Pool) *PlayerRepo {
	return &PlayerRepo{pool: pool}
}

// Create inserts a new player into the database.
func (r *PlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	query := `INSERT INTO players (id, username, password_hash, balance, total_wagered, net_winnings, games_played, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Username, p.PasswordHash, p.Balance,
		p.TotalWagered, p.NetWinnings, p.GamesPlayed,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

// GetByID fetches a player by its UUID.
func (r *PlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	query := `SELECT id, username, password_hash, balance, total_wagered, net_winnings, games_played, created_at, updated_at
		FROM players WHERE id = $1`

	p := &domain.Player{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Username, &p.PasswordHash, &p.Balance,
		&p.TotalWagered, &p.NetWinnings, &p.GamesPlayed,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get player by id: %w", err)
	}
	return p, nil
}

// GetByUsername fetches a player by username.
func (r *PlayerRepo) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `SELECT id, username, password_hash, balance, total_wagered, net_winnings, games_played, created_at, updated_at
		FROM players WHERE username = $1`

	p := &domain.Player{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&p.ID, &p.Username, &p.PasswordHash, &p.Balance,
		&p.TotalWagered, &p.NetWinnings, &p.GamesPlayed,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get player by username: %w", err)
	}
	return p, nil
}

// SettleBalance writes the post-settlement balance and stat counters in a
// single conditional UPDATE. The write only applies when the stored balance
// still equals expectedBalance, so a concurrent settlement that landed first
// makes this one report false instead of clobbering it.
func (r *PlayerRepo) SettleBalance(ctx context.Context, id uuid.UUID, expectedBalance, newBalance, staked, net int64) (bool, error) {
	query := `UPDATE players
		SET balance = $2,
			total_wagered = total_wagered + $3,
			net_winnings = net_winnings + $4,
			games_played = games_played + 1,
			updated_at = NOW()
		WHERE id = $1 AND balance = $5`

	tag, err := r.pool.Exec(ctx, query, id, newBalance, staked, net, expectedBalance)
	if err != nil {
		return false, fmt.Errorf("settle player balance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RestoreBalance reverses a settlement write that could not be completed.
// It is conditional on the balance SettleBalance produced, so a restore
// never undoes someone else's later write.
func (r *PlayerRepo) RestoreBalance(ctx context.Context, id uuid.UUID, expectedBalance, newBalance, staked, net int64) (bool, error) {
	query := `UPDATE players
		SET balance = $2,
			total_wagered = total_wagered - $3,
			net_winnings = net_winnings - $4,
			games_played = games_played - 1,
			updated_at = NOW()
		WHERE id = $1 AND balance = $5`

	tag, err := r.pool.Exec(ctx, query, id, newBalance, staked, net, expectedBalance)
	if err != nil {
		return false, fmt.Errorf("restore player balance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Leaderboard returns the top players ordered by net winnings.
func (r *PlayerRepo) Leaderboard(ctx context.Context, limit int) ([]domain.Player, error) {
	query := `SELECT id, username, password_hash, balance, total_wagered, net_winnings, games_played, created_at, updated_at
		FROM players
		WHERE games_played > 0
		ORDER BY net_winnings DESC, username ASC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p := domain.Player{}
		if err := rows.Scan(
			&p.ID, &p.Username, &p.PasswordHash, &p.Balance,
			&p.TotalWagered, &p.NetWinnings, &p.GamesPlayed,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard rows: %w", err)
	}
	return players, nil
}
