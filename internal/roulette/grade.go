package roulette

import "roulette-table-service/internal/core/domain"

// Grading is the result of grading one wager against one outcome. On a win,
// Winnings is stake times odds and TotalPayout is stake plus winnings; on a
// loss both payout fields are zero.
type Grading struct {
	IsWinner    bool
	Winnings    int64
	TotalPayout int64
}

// Grade decides win/lose and computes the payout for one wager. It is a pure
// function of (bet, outcome): settlement grades every wager twice, once to
// aggregate totals and once to persist, and the two passes must agree exactly.
// A category outside the known set never wins.
func Grade(bet *domain.Bet, out domain.Outcome) Grading {
	if !isWinner(bet, out) {
		return Grading{}
	}

	winnings := PotentialWinnings(bet.Type, bet.Amount)
	return Grading{
		IsWinner:    true,
		Winnings:    winnings,
		TotalPayout: bet.Amount + winnings,
	}
}

func isWinner(bet *domain.Bet, out domain.Outcome) bool {
	n := out.WinningNumber

	switch bet.Type {
	case domain.BetStraight, domain.BetSplit, domain.BetStreet, domain.BetCorner, domain.BetLine:
		for _, sel := range bet.Numbers {
			if sel == n {
				return true
			}
		}
		return false
	case domain.BetDozen:
		return len(bet.Numbers) == 1 && out.Dozen == bet.Numbers[0]
	case domain.BetColumn:
		return len(bet.Numbers) == 1 && out.Column == bet.Numbers[0]
	case domain.BetRed:
		return out.Color == "red"
	case domain.BetBlack:
		return out.Color == "black"
	case domain.BetEven:
		return out.IsEven
	case domain.BetOdd:
		return n != 0 && !out.IsEven
	case domain.BetLow:
		return out.IsLow
	case domain.BetHigh:
		return n != 0 && !out.IsLow
	}

	return false
}
