// Package analyzer derives typing metrics and heuristic mood scores from a
// completed session's keystroke timeline. All functions are pure and total:
// malformed-but-well-typed input degrades to clamped defaults instead of
// failing, so a submitted session always produces a result.
package analyzer

import (
	"math"
	"sort"
	"strings"

	"typemood/internal/models"
)

// Analysis thresholds. The pause and burst values are in milliseconds of
// inter-keystroke gap between consecutive key-down events.
const (
	// PauseThresholdMs is the minimum gap that counts as a pause.
	PauseThresholdMs = 2000.0

	// BurstGapMs is the maximum gap inside a fast-typing burst.
	BurstGapMs = 150.0

	// BurstMinRun is the minimum number of consecutive key-down events,
	// all separated by gaps under BurstGapMs, that counts as one burst.
	BurstMinRun = 5

	// SlowGapMs is the minimum gap that counts as a slow phase. Slower
	// than a pause threshold would make slow phases a duplicate of
	// pauses, so hesitations between one and two seconds land here.
	SlowGapMs = 1000.0

	// NeutralConsistency is the rhythm consistency reported when there
	// are fewer than two gaps to measure.
	NeutralConsistency = 50.0
)

// Extract computes the primitive metrics for a frozen session. The input is
// not mutated; events are copied before sorting so out-of-order timestamps
// are tolerated rather than rejected.
func Extract(input models.SessionInput) models.Metrics {
	m := models.Metrics{RhythmConsistency: NeutralConsistency}

	m.AvgSpeedWPM = wordsPerMinute(input.Text, input.TotalTimeSeconds)

	downs := downTimestamps(input.Events)
	m.TotalKeystrokes = len(downs)
	m.CorrectionCount = countCorrections(input.Events)
	if m.TotalKeystrokes > 0 {
		m.CorrectionRate = float64(m.CorrectionCount) / float64(m.TotalKeystrokes) * 100
	}

	gaps := interKeyGaps(downs)
	if len(gaps) == 0 {
		return m
	}

	var pauseSum float64
	run := 1
	for _, gap := range gaps {
		if gap > PauseThresholdMs {
			m.PauseCount++
			pauseSum += gap
		}
		if gap > SlowGapMs {
			m.SlowPhases++
		}
		if gap < BurstGapMs {
			run++
		} else {
			if run >= BurstMinRun {
				m.BurstCount++
			}
			run = 1
		}
	}
	if run >= BurstMinRun {
		m.BurstCount++
	}

	if m.PauseCount > 0 {
		m.AvgPauseDuration = pauseSum / float64(m.PauseCount) / 1000
	}

	m.RhythmConsistency = rhythmConsistency(gaps)

	return m
}

// wordsPerMinute counts whitespace-separated words over elapsed minutes.
// Non-positive durations and non-finite results collapse to zero.
func wordsPerMinute(text string, totalTimeSeconds float64) float64 {
	if totalTimeSeconds <= 0 {
		return 0
	}
	words := len(strings.Fields(text))
	wpm := float64(words) / (totalTimeSeconds / 60)
	if math.IsNaN(wpm) || math.IsInf(wpm, 0) {
		return 0
	}
	return wpm
}

// downTimestamps returns the timestamps of key-down events, sorted ascending.
func downTimestamps(events []models.KeystrokeEvent) []float64 {
	stamps := make([]float64, 0, len(events))
	for _, e := range events {
		if e.IsDown() {
			stamps = append(stamps, e.Timestamp)
		}
	}
	sort.Float64s(stamps)
	return stamps
}

// countCorrections counts key-down events for the backspace key.
func countCorrections(events []models.KeystrokeEvent) int {
	count := 0
	for _, e := range events {
		if !e.IsDown() {
			continue
		}
		switch e.Key {
		case "Backspace", "backspace", "\b":
			count++
		}
	}
	return count
}

// interKeyGaps computes gaps between consecutive sorted key-down timestamps.
// Non-finite timestamps produce non-finite gaps, which are dropped.
func interKeyGaps(stamps []float64) []float64 {
	if len(stamps) < 2 {
		return nil
	}
	gaps := make([]float64, 0, len(stamps)-1)
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i] - stamps[i-1]
		if math.IsNaN(gap) || math.IsInf(gap, 0) {
			continue
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

// rhythmConsistency maps the coefficient of variation of the gaps onto a
// 0-100 scale: perfectly uniform typing scores 100, highly erratic typing
// approaches 0. Fewer than two gaps is not enough signal and scores the
// neutral default, as does a degenerate all-zero gap sequence.
func rhythmConsistency(gaps []float64) float64 {
	if len(gaps) < 2 {
		return NeutralConsistency
	}

	var sum float64
	for _, g := range gaps {
		sum += g
	}
	mean := sum / float64(len(gaps))
	if mean <= 0 {
		return NeutralConsistency
	}

	var variance float64
	for _, g := range gaps {
		d := g - mean
		variance += d * d
	}
	variance /= float64(len(gaps))
	cv := math.Sqrt(variance) / mean

	return clamp(100-cv*100, 0, 100)
}
