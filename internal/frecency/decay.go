package frecency

import (
	"math"
	"time"
)

// halfLife is how long it takes an untouched entry to lose half its
// score. Thirty days keeps files you opened last week well ahead of
// files you opened last quarter.
const halfLife = 30 * 24 * time.Hour

var decayRate = math.Ln2 / halfLife.Seconds()

// ScoreAt returns the score of an entry at now, given the instant at
// which the score decays to exactly 1. The score grows exponentially
// before that instant and shrinks exponentially after it.
func ScoreAt(now, dateAtScoreOne time.Time) float64 {
	return math.Exp(decayRate * dateAtScoreOne.Sub(now).Seconds())
}

// DateAtScoreOne inverts ScoreAt: the instant at which a score observed
// at now will have decayed to exactly 1. Only the derived instant is
// persisted, never the raw score, so reads stay correct without any
// background recomputation.
//
// score must be positive; the smallest score produced in normal flow is
// 1 (a single fresh open), so this never sees zero.
func DateAtScoreOne(now time.Time, score float64) time.Time {
	offset := math.Log(score) / decayRate
	return now.Add(time.Duration(offset * float64(time.Second)))
}
