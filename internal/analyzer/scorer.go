package analyzer

import (
	"math"

	"typemood/internal/models"
)

// Score thresholds used by the feedback rules and the dominant mood label.
const (
	stressAlertThreshold = 70.0
	dominantThreshold    = 60.0
)

// Mood labels persisted with each session.
const (
	MoodFocused   = "focused"
	MoodStressed  = "stressed"
	MoodConfident = "confident"
	MoodNeutral   = "neutral"
)

// Score maps metrics to the three mood scores and selects a feedback bundle.
//
// The model is a fixed-weight linear heuristic. CorrectionRate is corrections
// per 100 keystrokes throughout. Each score is the clamped sum of its terms:
//
//	focus      = 70 - correctionRate*2 - min(pauseCount*5, 30) + rhythm*0.3
//	stress     = 30 + avgPauseDuration*10 + (100-rhythm)*0.5 + 20 if speed outside [20,120]
//	confidence = 50 + burstCount*15 + max(0, 10-correctionRate)*3 + rhythm*0.4 + 15 if speed in [40,80]
//
// Only the final sums are clamped into [0,100], so individual terms saturate
// the score rather than capping each other. Score is total: non-finite metric
// values clamp to the low bound instead of propagating.
func Score(m models.Metrics) (models.MoodScores, models.Feedback) {
	focus := 70.0
	focus -= m.CorrectionRate * 2
	focus -= math.Min(float64(m.PauseCount)*5, 30)
	focus += m.RhythmConsistency * 0.3

	stress := 30.0
	stress += m.AvgPauseDuration * 10
	stress += (100 - m.RhythmConsistency) * 0.5
	if m.AvgSpeedWPM < 20 || m.AvgSpeedWPM > 120 {
		stress += 20
	}

	confidence := 50.0
	confidence += float64(m.BurstCount) * 15
	confidence += math.Max(0, 10-m.CorrectionRate) * 3
	confidence += m.RhythmConsistency * 0.4
	if m.AvgSpeedWPM >= 40 && m.AvgSpeedWPM <= 80 {
		confidence += 15
	}

	scores := models.MoodScores{
		Focus:      clamp(focus, 0, 100),
		Stress:     clamp(stress, 0, 100),
		Confidence: clamp(confidence, 0, 100),
	}

	return scores, SelectFeedback(scores)
}

// DominantMood labels the strongest mood, or neutral when no score reaches
// the dominance threshold. Ties resolve stress, then focus, then confidence.
func DominantMood(s models.MoodScores) string {
	if s.Stress < dominantThreshold && s.Focus < dominantThreshold && s.Confidence < dominantThreshold {
		return MoodNeutral
	}
	if s.Stress >= s.Focus && s.Stress >= s.Confidence {
		return MoodStressed
	}
	if s.Focus >= s.Confidence {
		return MoodFocused
	}
	return MoodConfident
}

// clamp bounds v into [lo,hi]. NaN collapses to the low bound so degenerate
// arithmetic yields a defined score instead of poisoning the result.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
