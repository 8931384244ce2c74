package roulette

import "roulette-table-service/internal/core/domain"

// payoutTable maps each bet category to its odds: winnings per unit staked.
// European single-zero table.
var payoutTable = map[domain.BetType]int64{
	domain.BetStraight: 35,
	domain.BetSplit:    17,
	domain.BetStreet:   11,
	domain.BetCorner:   8,
	domain.BetLine:     5,
	domain.BetDozen:    2,
	domain.BetColumn:   2,
	domain.BetRed:      1,
	domain.BetBlack:    1,
	domain.BetEven:     1,
	domain.BetOdd:      1,
	domain.BetLow:      1,
	domain.BetHigh:     1,
}

// Odds returns the payout odds for a bet category. The second return is
// false for categories outside the known set.
func Odds(t domain.BetType) (int64, bool) {
	odds, ok := payoutTable[t]
	return odds, ok
}

// PotentialWinnings returns stake times the category odds. Zero for an
// unknown category.
func PotentialWinnings(t domain.BetType, stake int64) int64 {
	odds, ok := payoutTable[t]
	if !ok {
		return 0
	}
	return stake * odds
}
