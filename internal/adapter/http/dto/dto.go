package dto

// RegisterRequest is the request body for player registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for player login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// PlaceBetRequest is the request body for placing a wager. Amount is in
// cents. Numbers carries the selection of inside bets and the dozen or
// column selector; outside even-money bets leave it empty.
type PlaceBetRequest struct {
	BetType string `json:"bet_type" binding:"required,bet_type"`
	Numbers []int  `json:"numbers,omitempty" binding:"omitempty,max=6,dive,gte=0,lte=36"`
	Amount  int64  `json:"amount" binding:"required,gt=0"`
}

// ParseBetRequest is the request body for the bet-command interpreter.
type ParseBetRequest struct {
	Command string `json:"command" binding:"required,max=200"`
}

// SpinRequest is the request body for running one settlement cycle.
// WinningNumber, when set, is a number the client already displayed; the
// server re-derives every attribute from it.
type SpinRequest struct {
	WinningNumber *int `json:"winning_number,omitempty" binding:"omitempty,gte=0,lte=36"`
}

// BetResponse is the wire shape of one wager.
type BetResponse struct {
	ID           string `json:"id"`
	RoundID      string `json:"round_id"`
	BetType      string `json:"bet_type"`
	Numbers      []int  `json:"numbers,omitempty"`
	Amount       int64  `json:"amount"`
	Odds         int64  `json:"odds"`
	PotentialWin int64  `json:"potential_win"`
	IsWinner     *bool  `json:"is_winner,omitempty"`
	Payout       *int64 `json:"payout,omitempty"`
	PlacedAt     string `json:"placed_at"`
}

// OutcomeResponse is the wire shape of one spin outcome.
type OutcomeResponse struct {
	WinningNumber int    `json:"winning_number"`
	Color         string `json:"color"`
	IsEven        bool   `json:"is_even"`
	IsLow         bool   `json:"is_low"`
	Dozen         int    `json:"dozen"`
	Column        int    `json:"column"`
}

// SettlementResponse is the response body for one settlement cycle.
type SettlementResponse struct {
	RoundSequence int64           `json:"round_sequence"`
	Outcome       OutcomeResponse `json:"outcome"`
	Bets          []BetResponse   `json:"bets"`
	TotalStaked   int64           `json:"total_staked"`
	TotalPaid     int64           `json:"total_paid"`
	NetResult     int64           `json:"net_result"`
	NewBalance    int64           `json:"new_balance"`
	Winners       int             `json:"winners"`
	WinRate       float64         `json:"win_rate"`
}

// PlayerResponse is the wire shape of the player ledger.
type PlayerResponse struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Balance      int64   `json:"balance"`
	TotalWagered int64   `json:"total_wagered"`
	NetWinnings  int64   `json:"net_winnings"`
	GamesPlayed  int64   `json:"games_played"`
	WinRate      float64 `json:"win_rate"`
	BiggestWin   int64   `json:"biggest_win"`
}
