package ports

import (
	"context"
	"time"

	"roulette-table-service/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the identity provider.
type TokenService interface {
	Generate(playerID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	PlayerID uuid.UUID
	Username string
}

// EventPublisher is the one-way realtime notifier. Publish is fire-and-
// forget: the engine emits round-phase and settlement events but never
// depends on delivery succeeding.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

// Event is a realtime notification emitted by the engine.
type Event struct {
	Kind    string      `json:"kind"` // e.g. "round.created", "bet.placed", "round.settled"
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload"`
}

// --- Service Ports (Business Logic) ---

// RoundService owns betting-round identity and phase.
type RoundService interface {
	// GetOrCreateBettingRound returns the round currently accepting bets,
	// creating the successor round atomically when none exists. Safe under
	// concurrent callers: at most one round per sequence number is ever
	// created.
	GetOrCreateBettingRound(ctx context.Context) (*domain.Round, error)
	// CompleteRound attaches the outcome and flips the round to completed.
	// Legal from betting or spinning; completing a completed round fails
	// with an invalid-transition error rather than overwriting.
	CompleteRound(ctx context.Context, roundID uuid.UUID, outcome domain.Outcome) (*domain.Round, error)
}

// GameService is the core betting and settlement engine.
type GameService interface {
	// PlaceBet validates and records one wager in the current betting round.
	PlaceBet(ctx context.Context, req PlaceBetRequest) (*domain.Bet, error)
	// Settle runs one full resolution cycle for the player's oldest round
	// holding pending bets: resolve or look up the outcome, grade every
	// wager, mutate the ledger atomically and persist the graded wagers.
	// A round completed by another player's settlement is graded against
	// its recorded outcome.
	Settle(ctx context.Context, req SettlementRequest) (*SettlementResult, error)
}

// PlaceBetRequest holds validated input for placing a wager.
type PlaceBetRequest struct {
	PlayerID uuid.UUID
	Type     domain.BetType
	Numbers  []int
	Amount   int64 // Cents
}

// SettlementRequest holds input for one settlement cycle. NumberHint, when
// set, is a winning number already shown to the player (animation
// consistency); only the numeric value is trusted - every descriptive
// attribute is re-derived server-side.
type SettlementRequest struct {
	PlayerID   uuid.UUID
	NumberHint *int
}

// SettlementResult is the outcome of one settlement cycle.
type SettlementResult struct {
	Round       *domain.Round  `json:"round"`
	Outcome     domain.Outcome `json:"outcome"`
	Bets        []domain.Bet   `json:"bets"` // Graded, with payouts attached
	TotalStaked int64          `json:"total_staked"`
	TotalPaid   int64          `json:"total_paid"`
	NetResult   int64          `json:"net_result"`
	NewBalance  int64          `json:"new_balance"`
	Winners     int            `json:"winners"`
	WinRate     float64        `json:"win_rate"` // Lifetime, percent, 2 decimals
}

// AuthService is the identity provider: registration, login and token
// issuance. The engine trusts only the identity and balance it reads from
// storage at settlement time, never a client-asserted balance.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Player, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for player registration.
type RegisterRequest struct {
	Username string
	Password string
}

// BetParser interprets natural-language bet commands. Its output is a
// wager shape only: every parsed bet still passes through bet validation
// before acceptance.
type BetParser interface {
	Parse(command string) (*ParsedBet, error)
}

// ParsedBet is the wager shape produced by the command interpreter.
type ParsedBet struct {
	Type       domain.BetType `json:"bet_type"`
	Numbers    []int          `json:"numbers"`
	Amount     int64          `json:"amount"` // Cents
	Confidence float64        `json:"confidence"`
	RawCommand string         `json:"raw_command"`
}

// StatsService provides player/table reporting views.
type StatsService interface {
	PlayerOverview(ctx context.Context, playerID uuid.UUID) (*PlayerOverview, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	Analytics(ctx context.Context) (*Analytics, error)
	GameState(ctx context.Context, playerID uuid.UUID) (*GameState, error)
}

// PlayerOverview combines the ledger with graded-wager statistics.
type PlayerOverview struct {
	Player  *domain.Player      `json:"player"`
	Stats   *domain.PlayerStats `json:"stats"`
	WinRate float64             `json:"win_rate"`
}

// LeaderboardEntry is one row of the net-winnings leaderboard.
type LeaderboardEntry struct {
	Username    string `json:"username"`
	NetWinnings int64  `json:"net_winnings"`
	GamesPlayed int64  `json:"games_played"`
}

// NumberFrequency counts how often a number hit in the sampled outcomes.
type NumberFrequency struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// Analytics holds hot/cold numbers over recent completed rounds.
type Analytics struct {
	Hot        []NumberFrequency `json:"hot_numbers"`
	Cold       []NumberFrequency `json:"cold_numbers"`
	TotalSpins int               `json:"total_spins"`
}

// GameState is the player-facing view of the current round.
type GameState struct {
	Round          *domain.Round    `json:"round"`
	PendingBets    []domain.Bet     `json:"pending_bets"`
	TotalPot       int64            `json:"total_pot"`
	RecentOutcomes []domain.Outcome `json:"recent_outcomes"`
}
