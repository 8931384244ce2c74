package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/pkg/apperror"
)

// parserConfidence is reported for every regex match. The interpreter has
// no notion of partial certainty; its output is re-validated anyway.
const parserConfidence = 0.8

// betPattern binds a wager category to the phrasings that name it.
// Order matters: the straight-number patterns also match phrases like
// "10 on 7", so the named outside bets are tried first.
type betPattern struct {
	betType  domain.BetType
	patterns []*regexp.Regexp
}

const amountExpr = `(\d+(?:\.\d+)?)`

var betPatterns = []betPattern{
	{domain.BetRed, compilePhrases("red")},
	{domain.BetBlack, compilePhrases("black")},
	{domain.BetEven, compilePhrases("even")},
	{domain.BetOdd, compilePhrases("odd")},
	{domain.BetLow, compilePhrases(`(?:low|1-18)`)},
	{domain.BetHigh, compilePhrases(`(?:high|19-36)`)},
	{domain.BetStraight, []*regexp.Regexp{
		regexp.MustCompile(`(?:bet|place|put)\s+` + amountExpr + `\s+on\s+(?:number\s+)?(\d+)`),
		regexp.MustCompile(amountExpr + `\s+on\s+(\d+)`),
		regexp.MustCompile(`straight\s+` + amountExpr + `\s+on\s+(\d+)`),
	}},
}

// compilePhrases builds the two phrasings shared by every outside bet:
// "bet 10 on red" and the terser "10 red" / "10 on red".
func compilePhrases(target string) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?:bet|place|put)\s+` + amountExpr + `\s+on\s+` + target),
		regexp.MustCompile(amountExpr + `\s+(?:on\s+)?` + target),
	}
}

// RegexBetParser implements ports.BetParser with rule-based patterns.
type RegexBetParser struct{}

// NewRegexBetParser creates a new regex bet parser.
func NewRegexBetParser() *RegexBetParser {
	return &RegexBetParser{}
}

// Parse interprets one natural-language betting command. Amounts are read
// as dollars and converted to cents. A straight number outside 0-36 is not
// a match; the next pattern gets a chance.
func (p *RegexBetParser) Parse(command string) (*ports.ParsedBet, error) {
	clean := strings.ToLower(strings.TrimSpace(command))

	for _, bp := range betPatterns {
		for _, re := range bp.patterns {
			m := re.FindStringSubmatch(clean)
			if m == nil {
				continue
			}

			amount, err := parseDollars(m[1])
			if err != nil {
				continue
			}

			parsed := &ports.ParsedBet{
				Type:       bp.betType,
				Amount:     amount,
				Confidence: parserConfidence,
				RawCommand: command,
			}
			if bp.betType == domain.BetStraight {
				number, err := strconv.Atoi(m[2])
				if err != nil || number < 0 || number > 36 {
					continue
				}
				parsed.Numbers = []int{number}
			}
			return parsed, nil
		}
	}

	return nil, apperror.ErrParseFailure(command)
}

// parseDollars converts a decimal dollar amount to cents.
func parseDollars(s string) (int64, error) {
	dollars, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(dollars * 100)), nil
}
