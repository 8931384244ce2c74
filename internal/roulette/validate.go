package roulette

import (
	"fmt"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/pkg/apperror"
)

// ValidateBet checks a proposed wager against the category's structural rules
// and the player's available balance. It performs no mutation; a failure is a
// *apperror.AppError carrying a human-readable reason. Checks run in order:
// stake positive, stake within balance, stake within the table maximum,
// category known, number cardinality/range/shape for the category.
func ValidateBet(t domain.BetType, numbers []int, stake, balance, maxStake int64) error {
	if stake <= 0 {
		return apperror.Validation("stake must be positive")
	}
	if stake > balance {
		return apperror.ErrInsufficientFunds()
	}
	if maxStake > 0 && stake > maxStake {
		return apperror.ErrStakeLimitExceeded(maxStake)
	}
	if !t.IsKnown() {
		return apperror.ErrUnknownBetType(string(t))
	}

	switch t {
	case domain.BetStraight:
		if len(numbers) != 1 {
			return apperror.Validation("straight bet requires exactly 1 number")
		}
		if numbers[0] < 0 || numbers[0] > 36 {
			return apperror.Validation(fmt.Sprintf("number %d out of range for straight bet", numbers[0]))
		}

	case domain.BetSplit:
		if len(numbers) != 2 {
			return apperror.Validation("split bet requires exactly 2 numbers")
		}
		if !isValidSplit(numbers) {
			return apperror.Validation("split bet numbers must be adjacent on the table")
		}

	case domain.BetStreet:
		if len(numbers) != 3 {
			return apperror.Validation("street bet requires exactly 3 numbers")
		}
		if !isValidStreet(numbers) {
			return apperror.Validation("street bet numbers must form one full row")
		}

	case domain.BetCorner:
		if len(numbers) != 4 {
			return apperror.Validation("corner bet requires exactly 4 numbers")
		}
		if !isValidCorner(numbers) {
			return apperror.Validation("corner bet numbers must form a 2x2 block")
		}

	case domain.BetLine:
		if len(numbers) != 6 {
			return apperror.Validation("line bet requires exactly 6 numbers")
		}
		if !isValidLine(numbers) {
			return apperror.Validation("line bet numbers must span two adjacent rows")
		}

	case domain.BetDozen:
		if len(numbers) != 1 || numbers[0] < 1 || numbers[0] > 3 {
			return apperror.Validation("dozen bet requires a selector of 1, 2 or 3")
		}

	case domain.BetColumn:
		if len(numbers) != 1 || numbers[0] < 1 || numbers[0] > 3 {
			return apperror.Validation("column bet requires a selector of 1, 2 or 3")
		}

	case domain.BetRed, domain.BetBlack, domain.BetEven, domain.BetOdd, domain.BetLow, domain.BetHigh:
		if len(numbers) != 0 {
			return apperror.Validation(fmt.Sprintf("%s bet must not specify numbers", t))
		}
	}

	return nil
}
