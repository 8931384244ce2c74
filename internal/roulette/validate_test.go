package roulette

import (
	"errors"
	"testing"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBalance  = int64(10000)
	testMaxStake = int64(5000)
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, code, appErr.Code)
}

func TestValidateBet_StakeRules(t *testing.T) {
	err := ValidateBet(domain.BetRed, nil, 0, testBalance, testMaxStake)
	assertCode(t, err, "BET_001")

	err = ValidateBet(domain.BetRed, nil, -100, testBalance, testMaxStake)
	assertCode(t, err, "BET_001")

	err = ValidateBet(domain.BetRed, nil, testBalance+1, testBalance, 0)
	assertCode(t, err, "LEDGER_001")

	err = ValidateBet(domain.BetRed, nil, testMaxStake+1, testBalance, testMaxStake)
	assertCode(t, err, "BET_003")
}

func TestValidateBet_UnknownType(t *testing.T) {
	err := ValidateBet(domain.BetType("basket"), []int{0, 1, 2, 3}, 100, testBalance, testMaxStake)
	assertCode(t, err, "BET_002")
}

func TestValidateBet_Straight(t *testing.T) {
	assert.NoError(t, ValidateBet(domain.BetStraight, []int{0}, 100, testBalance, testMaxStake))
	assert.NoError(t, ValidateBet(domain.BetStraight, []int{36}, 100, testBalance, testMaxStake))

	// Two numbers is a validation failure before any draw can occur.
	assertCode(t, ValidateBet(domain.BetStraight, []int{7, 8}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetStraight, nil, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetStraight, []int{37}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetStraight, []int{-1}, 100, testBalance, testMaxStake), "BET_001")
}

func TestValidateBet_Split(t *testing.T) {
	valid := [][]int{
		{7, 8},   // horizontal neighbors, row 3
		{8, 7},   // order must not matter
		{7, 10},  // vertical neighbors
		{0, 1},   // zero adjacency
		{0, 2},
		{0, 3},
		{35, 36}, // last row horizontal
		{33, 36}, // last vertical pair
	}
	for _, numbers := range valid {
		assert.NoError(t, ValidateBet(domain.BetSplit, numbers, 100, testBalance, testMaxStake),
			"expected %v to be a valid split", numbers)
	}

	invalid := [][]int{
		{3, 4},   // row boundary, not neighbors on the table
		{6, 7},   // row boundary
		{7, 9},   // same row but not adjacent
		{0, 4},   // zero only touches 1-3
		{5, 5},   // duplicate
		{7, 11},  // diagonal
		{1, 37},  // out of range
	}
	for _, numbers := range invalid {
		assertCode(t, ValidateBet(domain.BetSplit, numbers, 100, testBalance, testMaxStake), "BET_001")
	}
}

func TestValidateBet_Street(t *testing.T) {
	assert.NoError(t, ValidateBet(domain.BetStreet, []int{1, 2, 3}, 100, testBalance, testMaxStake))
	assert.NoError(t, ValidateBet(domain.BetStreet, []int{6, 4, 5}, 100, testBalance, testMaxStake))
	assert.NoError(t, ValidateBet(domain.BetStreet, []int{34, 35, 36}, 100, testBalance, testMaxStake))

	// Consecutive but straddling two rows.
	assertCode(t, ValidateBet(domain.BetStreet, []int{2, 3, 4}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetStreet, []int{1, 2, 4}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetStreet, []int{0, 1, 2}, 100, testBalance, testMaxStake), "BET_001")
}

func TestValidateBet_Corner(t *testing.T) {
	assert.NoError(t, ValidateBet(domain.BetCorner, []int{1, 2, 4, 5}, 100, testBalance, testMaxStake))
	assert.NoError(t, ValidateBet(domain.BetCorner, []int{5, 2, 4, 1}, 100, testBalance, testMaxStake))
	assert.NoError(t, ValidateBet(domain.BetCorner, []int{32, 33, 35, 36}, 100, testBalance, testMaxStake))

	// Anchored in the rightmost column wraps to the next row.
	assertCode(t, ValidateBet(domain.BetCorner, []int{3, 4, 6, 7}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetCorner, []int{1, 2, 3, 4}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetCorner, []int{1, 2, 4}, 100, testBalance, testMaxStake), "BET_001")
}

func TestValidateBet_Line(t *testing.T) {
	assert.NoError(t, ValidateBet(domain.BetLine, []int{1, 2, 3, 4, 5, 6}, 100, testBalance, testMaxStake))
	assert.NoError(t, ValidateBet(domain.BetLine, []int{31, 32, 33, 34, 35, 36}, 100, testBalance, testMaxStake))

	// Consecutive but not starting on a row boundary.
	assertCode(t, ValidateBet(domain.BetLine, []int{2, 3, 4, 5, 6, 7}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetLine, []int{1, 2, 3, 4, 5, 7}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetLine, []int{1, 2, 3, 4, 5}, 100, testBalance, testMaxStake), "BET_001")
}

func TestValidateBet_DozenColumn(t *testing.T) {
	for _, sel := range []int{1, 2, 3} {
		assert.NoError(t, ValidateBet(domain.BetDozen, []int{sel}, 100, testBalance, testMaxStake))
		assert.NoError(t, ValidateBet(domain.BetColumn, []int{sel}, 100, testBalance, testMaxStake))
	}

	assertCode(t, ValidateBet(domain.BetDozen, []int{0}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetDozen, []int{4}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetDozen, []int{1, 2}, 100, testBalance, testMaxStake), "BET_001")
	assertCode(t, ValidateBet(domain.BetColumn, nil, 100, testBalance, testMaxStake), "BET_001")
}

func TestValidateBet_OutsideBetsTakeNoNumbers(t *testing.T) {
	outside := []domain.BetType{
		domain.BetRed, domain.BetBlack, domain.BetEven,
		domain.BetOdd, domain.BetLow, domain.BetHigh,
	}

	for _, bt := range outside {
		assert.NoError(t, ValidateBet(bt, nil, 100, testBalance, testMaxStake))
		assert.NoError(t, ValidateBet(bt, []int{}, 100, testBalance, testMaxStake))
		assertCode(t, ValidateBet(bt, []int{5}, 100, testBalance, testMaxStake), "BET_001")
	}
}

func TestValidateBet_NoMaxStakeConfigured(t *testing.T) {
	// maxStake of zero disables the table limit.
	assert.NoError(t, ValidateBet(domain.BetRed, nil, testBalance, testBalance, 0))
}

func TestOdds_Table(t *testing.T) {
	expected := map[domain.BetType]int64{
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

	for bt, want := range expected {
		odds, ok := Odds(bt)
		require.True(t, ok, "missing odds for %s", bt)
		assert.Equal(t, want, odds, "odds for %s", bt)
	}

	_, ok := Odds(domain.BetType("basket"))
	assert.False(t, ok)

	assert.Equal(t, int64(3500), PotentialWinnings(domain.BetStraight, 100))
	assert.Zero(t, PotentialWinnings(domain.BetType("basket"), 100))
}
