package service

import (
	"errors"
	"testing"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexBetParser_Parse(t *testing.T) {
	parser := NewRegexBetParser()

	tests := []struct {
		name     string
		command  string
		wantType domain.BetType
		wantNums []int
		wantAmt  int64
	}{
		{"bet on red", "bet 10 on red", domain.BetRed, nil, 1000},
		{"place on black", "place 5 on black", domain.BetBlack, nil, 500},
		{"put on even", "put 25 on even", domain.BetEven, nil, 2500},
		{"terse odd", "15 on odd", domain.BetOdd, nil, 1500},
		{"terse without on", "20 red", domain.BetRed, nil, 2000},
		{"low by range", "bet 10 on 1-18", domain.BetLow, nil, 1000},
		{"high by name", "bet 10 on high", domain.BetHigh, nil, 1000},
		{"high by range", "5 on 19-36", domain.BetHigh, nil, 500},
		{"straight by number word", "place 5 on number 7", domain.BetStraight, []int{7}, 500},
		{"straight terse", "10 on 17", domain.BetStraight, []int{17}, 1000},
		{"straight zero", "bet 2 on number 0", domain.BetStraight, []int{0}, 200},
		{"fractional amount", "bet 2.50 on red", domain.BetRed, nil, 250},
		{"mixed case", "BET 10 ON RED", domain.BetRed, nil, 1000},
		{"surrounding chatter", "please put 5 on black for me", domain.BetBlack, nil, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parser.Parse(tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, parsed.Type)
			assert.Equal(t, tt.wantNums, parsed.Numbers)
			assert.Equal(t, tt.wantAmt, parsed.Amount)
			assert.Equal(t, parserConfidence, parsed.Confidence)
			assert.Equal(t, tt.command, parsed.RawCommand)
		})
	}
}

func TestRegexBetParser_Parse_Unrecognized(t *testing.T) {
	parser := NewRegexBetParser()

	for _, command := range []string{
		"",
		"hello there",
		"what are the odds on red",
		"bet everything on red",
	} {
		t.Run(command, func(t *testing.T) {
			parsed, err := parser.Parse(command)
			assert.Nil(t, parsed)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "BET_005", appErr.Code)
		})
	}
}

func TestRegexBetParser_Parse_NumberOffWheel(t *testing.T) {
	parser := NewRegexBetParser()

	// 37 is not a pocket; no pattern may claim the command.
	parsed, err := parser.Parse("bet 10 on number 37")
	assert.Nil(t, parsed)
	require.Error(t, err)
}
