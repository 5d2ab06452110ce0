package game

import (
	"fmt"
	"time"
)

// ID identifies a game on the leaderboard.
type ID string

const (
	DrugDashID      ID = "drug-dash"
	VitalsCrisisID  ID = "vitals-crisis"
	MedTermMayhemID ID = "medterm-mayhem"
)

// StartingLives is the number of lives at the start of every run.
const StartingLives = 3

// Variant holds everything that differs between the three games.
type Variant struct {
	ID          ID
	Name        string
	BatchSize   int
	CoinDivisor int
	// TimeLimit is the per-question countdown; zero disables the timer.
	TimeLimit time.Duration
	// TracksStreak enables the consecutive-correct streak.
	TracksStreak bool

	needsRefill func(queued int) bool
	points      func(lives, streak int) int
}

// NeedsRefill reports whether a queue of the given depth should be topped up.
func (v Variant) NeedsRefill(queued int) bool { return v.needsRefill(queued) }

// Points is the award for a correct answer given the state before scoring.
func (v Variant) Points(lives, streak int) int { return v.points(lives, streak) }

// Coins converts a session score into the coin reward.
func (v Variant) Coins(sessionScore int) int {
	if sessionScore <= 0 {
		return 0
	}
	return sessionScore / v.CoinDivisor
}

// DrugDash is the medication-selection game.
var DrugDash = Variant{
	ID:          DrugDashID,
	Name:        "Drug Dash",
	BatchSize:   3,
	CoinDivisor: 15,
	needsRefill: func(queued int) bool { return queued < 3 },
	points:      func(lives, _ int) int { return 150 + max(0, lives-1)*20 },
}

// VitalsCrisis is the normal/abnormal vital signs classification game.
var VitalsCrisis = Variant{
	ID:           VitalsCrisisID,
	Name:         "Vital Signs Crisis",
	BatchSize:    3,
	CoinDivisor:  10,
	TracksStreak: true,
	needsRefill:  func(queued int) bool { return queued <= 1 },
	points:       func(_, streak int) int { return 100 + streak*10 },
}

// MedTermMayhem is the timed medical terminology game.
var MedTermMayhem = Variant{
	ID:          MedTermMayhemID,
	Name:        "MedTerm Mayhem",
	BatchSize:   5,
	CoinDivisor: 12,
	TimeLimit:   15 * time.Second,
	needsRefill: func(queued int) bool { return queued*2 < 5 },
	points:      func(lives, _ int) int { return 80 + max(0, lives-1)*10 },
}

// Variants lists the games in menu order.
var Variants = []Variant{DrugDash, VitalsCrisis, MedTermMayhem}

// Lookup returns the variant with the given id.
func Lookup(id string) (Variant, error) {
	for _, v := range Variants {
		if string(v.ID) == id {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown game %q", id)
}
