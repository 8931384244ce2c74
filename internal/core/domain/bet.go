package domain

import (
	"time"

	"github.com/google/uuid"
)

// BetType is the closed set of wager categories on a European table.
type BetType string

const (
	BetStraight BetType = "straight" // single number, pays 35:1
	BetSplit    BetType = "split"    // two adjacent numbers, pays 17:1
	BetStreet   BetType = "street"   // three numbers in a row, pays 11:1
	BetCorner   BetType = "corner"   // four numbers in a square, pays 8:1
	BetLine     BetType = "line"     // six numbers across two rows, pays 5:1
	BetDozen    BetType = "dozen"    // 1st/2nd/3rd dozen, pays 2:1
	BetColumn   BetType = "column"   // column, pays 2:1
	BetRed      BetType = "red"
	BetBlack    BetType = "black"
	BetEven     BetType = "even"
	BetOdd      BetType = "odd"
	BetLow      BetType = "low"  // 1-18
	BetHigh     BetType = "high" // 19-36
)

// BetTypes lists every known category. Validation and grading dispatch over
// this set exhaustively; anything outside it is rejected, never graded.
var BetTypes = []BetType{
	BetStraight, BetSplit, BetStreet, BetCorner, BetLine,
	BetDozen, BetColumn,
	BetRed, BetBlack, BetEven, BetOdd, BetLow, BetHigh,
}

// IsKnown reports whether t is one of the 13 supported categories.
func (t BetType) IsKnown() bool {
	for _, k := range BetTypes {
		if t == k {
			return true
		}
	}
	return false
}

// IsInside reports whether t is a number-cluster bet (straight through line).
func (t BetType) IsInside() bool {
	switch t {
	case BetStraight, BetSplit, BetStreet, BetCorner, BetLine:
		return true
	}
	return false
}

// Bet represents one wager placed by a player in a round. Amounts are in
// cents. The grading fields (IsWinner, Payout, GradedAt) are nil until the
// settlement coordinator grades the bet against a spin outcome; they are set
// exactly once and never before the round's outcome exists.
type Bet struct {
	ID           uuid.UUID  `json:"id"`
	PlayerID     uuid.UUID  `json:"player_id"`
	RoundID      uuid.UUID  `json:"round_id"`
	Type         BetType    `json:"bet_type"`
	Numbers      []int      `json:"numbers"`
	Amount       int64      `json:"amount"` // Stake in cents
	Odds         int64      `json:"odds"`   // Winnings per unit staked
	PotentialWin int64      `json:"potential_win"`
	IsWinner     *bool      `json:"is_winner,omitempty"`
	Payout       *int64     `json:"payout,omitempty"` // Stake + winnings if won, 0 if lost
	PlacedAt     time.Time  `json:"placed_at"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
}

// IsGraded reports whether the bet has been settled against an outcome.
func (b *Bet) IsGraded() bool {
	return b.IsWinner != nil
}
