package game

import (
	"math"
	"time"
)

// baseMatchPoints is the value of a match at combo 1 with no time multiplier.
const baseMatchPoints = 1000

// timeMultiplier rewards matches made early in the session.
func timeMultiplier(elapsed time.Duration) float64 {
	switch {
	case elapsed <= 10*time.Second:
		return 2.0
	case elapsed <= 30*time.Second:
		return 1.5
	case elapsed <= 60*time.Second:
		return 1.2
	default:
		return 1.0
	}
}

// MatchScore is the value of a match made at the given combo (already
// counting this match) and elapsed session time. It is never below 1000.
func MatchScore(combo int, elapsed time.Duration) int {
	points := int(math.Floor(baseMatchPoints * max(1, float64(combo)*0.5) * timeMultiplier(elapsed)))
	if points < baseMatchPoints {
		return baseMatchPoints
	}
	return points
}

// TimeBonus rewards the time left on the clock: 2000 points for a full
// TimeLimit, pro rata below.
func TimeBonus(remaining time.Duration) int {
	bonus := int(math.Floor(2000 * remaining.Seconds() / TimeLimit.Seconds()))
	return max(0, bonus)
}

// AccuracyBonus starts at 1500 and loses 100 per miss, never going negative.
func AccuracyBonus(misses int) int {
	return max(0, 1500-misses*100)
}

// ComboBonus grows with the square of the final streak; streaks of one or
// less earn nothing.
func ComboBonus(combo int) int {
	if combo <= 1 {
		return 0
	}
	return int(math.Floor(float64(combo*combo) * 50))
}

// Breakdown is the final score and its parts.
type Breakdown struct {
	Base          int
	TimeBonus     int
	AccuracyBonus int
	ComboBonus    int
	Total         int
}

// Scorer keeps the running score of a session.
type Scorer struct {
	Score    int
	Combo    int
	MaxCombo int
	Attempts int
	Misses   int

	final *Breakdown
}

// Match records a successful comparison and returns the points it earned.
func (s *Scorer) Match(elapsed time.Duration) int {
	s.Attempts++
	s.Combo++
	s.MaxCombo = max(s.MaxCombo, s.Combo)
	points := MatchScore(s.Combo, elapsed)
	s.Score += points
	return points
}

// Miss records a failed comparison: the streak is lost and the penalty is
// taken from the running score.
func (s *Scorer) Miss() {
	s.Attempts++
	s.Misses++
	s.Combo = 0
	s.Score = max(0, s.Score-MissPenalty)
}

// Final computes the end-of-game total once and overwrites the running
// score with it. Later calls return the first result.
func (s *Scorer) Final(remaining time.Duration) Breakdown {
	if s.final != nil {
		return *s.final
	}
	b := Breakdown{
		Base:          s.Score,
		TimeBonus:     TimeBonus(remaining),
		AccuracyBonus: AccuracyBonus(s.Misses),
		ComboBonus:    ComboBonus(s.Combo),
	}
	b.Total = max(0, b.Base+b.TimeBonus+b.AccuracyBonus+b.ComboBonus)
	s.Score = b.Total
	s.final = &b
	return b
}
