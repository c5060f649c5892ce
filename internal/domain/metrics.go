package domain

import "math"

// difficultyKnee is where the estimation model switches from the
// logistic scale to a linear one. Below it, raw values are compressed
// so they stay comparable with the linear range.
const difficultyKnee = 400.0

// ClipDifficulty converts a raw logistic-scale difficulty estimate to
// its displayed value: linear at or above the knee, exponentially
// compressed below it.
func ClipDifficulty(d float64) float64 {
	if d >= difficultyKnee {
		return math.Round(d)
	}
	return math.Round(difficultyKnee / math.Exp(1.0-d/difficultyKnee))
}

// SuccessRate derives the percentage of accepted submissions. It is
// defined only when both counters are known and at least one
// submission exists; everywhere else the rate is absent rather than
// zero, NaN or Inf.
func SuccessRate(solverCount, submissions *int64) *float64 {
	if solverCount == nil || submissions == nil || *submissions <= 0 {
		return nil
	}
	rate := float64(*solverCount) / float64(*submissions) * 100.0
	return &rate
}
