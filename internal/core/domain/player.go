package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player holds the ledger for one account. Balance and the cumulative
// counters are mutated only by the settlement coordinator, through a single
// conditional write per settlement (read latest, verify, write) - never
// through relative increment expressions.
type Player struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Balance      int64     `json:"balance"`       // Cents
	TotalWagered int64     `json:"total_wagered"` // Cumulative stake, cents
	NetWinnings  int64     `json:"net_winnings"`  // Cumulative net result, cents
	GamesPlayed  int64     `json:"games_played"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PlayerStats is the graded-wager aggregate used for win-rate reporting.
// WinRate is winners/total*100 over graded bets only, 0 when nothing has
// been graded yet.
type PlayerStats struct {
	GradedBets int64   `json:"graded_bets"`
	WonBets    int64   `json:"won_bets"`
	WinRate    float64 `json:"win_rate"`
	TotalWon   int64   `json:"total_won"`
	BiggestWin int64   `json:"biggest_win"`
}
