package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoundPhase is the lifecycle state of a betting round.
type RoundPhase string

const (
	PhaseBetting   RoundPhase = "betting"
	PhaseSpinning  RoundPhase = "spinning"
	PhaseCompleted RoundPhase = "completed"
)

// Outcome is the authoritative result of one wheel spin. Every descriptive
// attribute is derived server-side from the winning number alone; a
// caller-supplied number is never trusted for color, parity, dozen or column.
// Zero is green, not even, not low, dozen 0 and column 0 - it satisfies no
// outside, dozen or column bet.
type Outcome struct {
	WinningNumber int    `json:"winning_number"` // 0-36
	Color         string `json:"color"`          // "red", "black", "green"
	IsEven        bool   `json:"is_even"`
	IsLow         bool   `json:"is_low"` // 1-18
	Dozen         int    `json:"dozen"`  // 0 for zero, else 1-3
	Column        int    `json:"column"` // 0 for zero, else 1-3
}

// Round is one betting-window-plus-draw cycle moving betting -> spinning ->
// completed. Settlement closes the betting window before the draw; a round
// stuck in spinning by a crashed settlement is still completable. Sequence
// numbers are strictly increasing and unique (storage enforces a uniqueness
// constraint); at most one round is in phase betting at any time. The outcome
// is nil until the round is completed and immutable afterwards.
type Round struct {
	ID        uuid.UUID  `json:"id"`
	Sequence  int64      `json:"sequence"`
	Phase     RoundPhase `json:"phase"`
	Outcome   *Outcome   `json:"outcome,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	SpunAt    *time.Time `json:"spun_at,omitempty"`
}

// AcceptsBets reports whether the round is current for new wagers.
func (r *Round) AcceptsBets() bool {
	return r.Phase == PhaseBetting
}

// IsCompleted reports whether the round has an attached outcome.
func (r *Round) IsCompleted() bool {
	return r.Phase == PhaseCompleted
}
