package analyzer

import (
	"math"
	"testing"

	"typemood/internal/models"
)

// downsAt builds key-down events for "a" at the given millisecond timestamps.
func downsAt(stamps ...float64) []models.KeystrokeEvent {
	events := make([]models.KeystrokeEvent, len(stamps))
	for i, ts := range stamps {
		events[i] = models.KeystrokeEvent{Key: "a", Timestamp: ts, Type: models.EventDown}
	}
	return events
}

// uniformDowns builds count key-down events separated by gapMs.
func uniformDowns(count int, gapMs float64) []models.KeystrokeEvent {
	stamps := make([]float64, count)
	for i := range stamps {
		stamps[i] = float64(i) * gapMs
	}
	return downsAt(stamps...)
}

func TestExtractEmptySession(t *testing.T) {
	m := Extract(models.SessionInput{})

	if m.AvgSpeedWPM != 0 {
		t.Errorf("AvgSpeedWPM = %v, want 0", m.AvgSpeedWPM)
	}
	if m.TotalKeystrokes != 0 || m.CorrectionCount != 0 || m.PauseCount != 0 || m.BurstCount != 0 {
		t.Errorf("expected zero counts, got %+v", m)
	}
	if m.RhythmConsistency != NeutralConsistency {
		t.Errorf("RhythmConsistency = %v, want %v", m.RhythmConsistency, NeutralConsistency)
	}
}

func TestExtractSingleKeystroke(t *testing.T) {
	m := Extract(models.SessionInput{
		Text:             "a",
		TotalTimeSeconds: 1,
		Events:           downsAt(0),
	})

	if m.TotalKeystrokes != 1 {
		t.Errorf("TotalKeystrokes = %d, want 1", m.TotalKeystrokes)
	}
	if m.PauseCount != 0 || m.BurstCount != 0 {
		t.Errorf("single keystroke cannot pause or burst, got %+v", m)
	}
	if m.AvgPauseDuration != 0 {
		t.Errorf("AvgPauseDuration = %v, want 0", m.AvgPauseDuration)
	}
	if m.RhythmConsistency != NeutralConsistency {
		t.Errorf("RhythmConsistency = %v, want %v", m.RhythmConsistency, NeutralConsistency)
	}
}

func TestWordsPerMinute(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		seconds  float64
		expected float64
	}{
		{
			name:     "four words in twelve seconds",
			text:     "the quick brown fox",
			seconds:  12,
			expected: 20,
		},
		{
			name:     "zero time",
			text:     "some words here",
			seconds:  0,
			expected: 0,
		},
		{
			name:     "negative time",
			text:     "some words",
			seconds:  -5,
			expected: 0,
		},
		{
			name:     "whitespace runs collapse",
			text:     "  one   two\t\nthree  ",
			seconds:  60,
			expected: 3,
		},
		{
			name:     "empty text",
			text:     "",
			seconds:  10,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wordsPerMinute(tt.text, tt.seconds)
			if result != tt.expected {
				t.Errorf("wordsPerMinute(%q, %v) = %v, want %v", tt.text, tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestExtractUniformRhythm(t *testing.T) {
	// Four words in twelve seconds with uniform 200ms gaps and no backspaces.
	m := Extract(models.SessionInput{
		Text:             "the quick brown fox",
		TotalTimeSeconds: 12,
		Events:           uniformDowns(19, 200),
	})

	if m.AvgSpeedWPM != 20 {
		t.Errorf("AvgSpeedWPM = %v, want 20", m.AvgSpeedWPM)
	}
	if m.CorrectionCount != 0 {
		t.Errorf("CorrectionCount = %d, want 0", m.CorrectionCount)
	}
	if m.PauseCount != 0 {
		t.Errorf("PauseCount = %d, want 0", m.PauseCount)
	}
	if m.BurstCount != 0 {
		t.Errorf("200ms gaps are not bursts, got BurstCount = %d", m.BurstCount)
	}
	if m.RhythmConsistency != 100 {
		t.Errorf("RhythmConsistency = %v, want 100 for uniform gaps", m.RhythmConsistency)
	}
}

func TestExtractCountsCorrections(t *testing.T) {
	events := []models.KeystrokeEvent{
		{Key: "h", Timestamp: 0, Type: models.EventDown},
		{Key: "h", Timestamp: 50, Type: models.EventUp},
		{Key: "Backspace", Timestamp: 200, Type: models.EventDown},
		{Key: "Backspace", Timestamp: 250, Type: models.EventUp},
		{Key: "i", Timestamp: 400, Type: models.EventDown},
		{Key: "Backspace", Timestamp: 600, Type: models.EventDown},
	}

	m := Extract(models.SessionInput{Text: "i", TotalTimeSeconds: 1, Events: events})

	if m.CorrectionCount != 2 {
		t.Errorf("CorrectionCount = %d, want 2 (key-up events must not count)", m.CorrectionCount)
	}
	if m.TotalKeystrokes != 4 {
		t.Errorf("TotalKeystrokes = %d, want 4", m.TotalKeystrokes)
	}
	if m.CorrectionRate != 50 {
		t.Errorf("CorrectionRate = %v, want 50 per 100 keystrokes", m.CorrectionRate)
	}
}

func TestExtractPauses(t *testing.T) {
	// Gaps: 500, 2500, 3500. Two qualify as pauses, averaging 3 seconds.
	m := Extract(models.SessionInput{
		Text:             "a b c d",
		TotalTimeSeconds: 10,
		Events:           downsAt(0, 500, 3000, 6500),
	})

	if m.PauseCount != 2 {
		t.Errorf("PauseCount = %d, want 2", m.PauseCount)
	}
	if m.AvgPauseDuration != 3 {
		t.Errorf("AvgPauseDuration = %v, want 3.0 seconds", m.AvgPauseDuration)
	}
	if m.SlowPhases != 2 {
		t.Errorf("SlowPhases = %d, want 2", m.SlowPhases)
	}
}

func TestExtractPauseThresholdIsExclusive(t *testing.T) {
	// A gap of exactly 2000ms is not a pause.
	m := Extract(models.SessionInput{
		Text:             "a b",
		TotalTimeSeconds: 4,
		Events:           downsAt(0, 2000),
	})

	if m.PauseCount != 0 {
		t.Errorf("PauseCount = %d, want 0 for a gap equal to the threshold", m.PauseCount)
	}
}

func TestExtractBursts(t *testing.T) {
	tests := []struct {
		name     string
		stamps   []float64
		expected int
	}{
		{
			name:     "six fast keys then a long gap",
			stamps:   []float64{0, 100, 200, 300, 400, 500, 3500},
			expected: 1,
		},
		{
			name:     "exactly five fast keys",
			stamps:   []float64{0, 100, 200, 300, 400},
			expected: 1,
		},
		{
			name:     "four fast keys is below the minimum run",
			stamps:   []float64{0, 100, 200, 300},
			expected: 0,
		},
		{
			name:     "gap equal to the burst threshold breaks the run",
			stamps:   []float64{0, 150, 300, 450, 600},
			expected: 0,
		},
		{
			name:     "two separate bursts",
			stamps:   []float64{0, 100, 200, 300, 400, 5000, 5100, 5200, 5300, 5400},
			expected: 2,
		},
		{
			name:     "one long run counts once",
			stamps:   []float64{0, 50, 100, 150, 200, 250, 300, 350, 400, 450, 500},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(models.SessionInput{
				Text:             "burst",
				TotalTimeSeconds: 10,
				Events:           downsAt(tt.stamps...),
			})
			if m.BurstCount != tt.expected {
				t.Errorf("BurstCount = %d, want %d", m.BurstCount, tt.expected)
			}
		})
	}
}

func TestExtractToleratesUnsortedEvents(t *testing.T) {
	sorted := Extract(models.SessionInput{
		Text:             "a b c",
		TotalTimeSeconds: 5,
		Events:           downsAt(0, 300, 600, 900),
	})
	shuffled := Extract(models.SessionInput{
		Text:             "a b c",
		TotalTimeSeconds: 5,
		Events:           downsAt(900, 0, 600, 300),
	})

	if sorted != shuffled {
		t.Errorf("out-of-order events changed the result: sorted %+v, shuffled %+v", sorted, shuffled)
	}
}

func TestExtractDoesNotMutateInput(t *testing.T) {
	events := downsAt(900, 0, 600, 300)
	input := models.SessionInput{Text: "a b", TotalTimeSeconds: 5, Events: events}

	Extract(input)

	want := []float64{900, 0, 600, 300}
	for i, e := range events {
		if e.Timestamp != want[i] {
			t.Fatalf("event %d timestamp mutated to %v, want %v", i, e.Timestamp, want[i])
		}
	}
}

func TestExtractNonFiniteTimestamps(t *testing.T) {
	events := downsAt(0, math.NaN(), 200, math.Inf(1), 400)

	m := Extract(models.SessionInput{Text: "ok", TotalTimeSeconds: 1, Events: events})

	if math.IsNaN(m.RhythmConsistency) || math.IsInf(m.RhythmConsistency, 0) {
		t.Errorf("RhythmConsistency = %v, want finite", m.RhythmConsistency)
	}
	if math.IsNaN(m.AvgPauseDuration) || math.IsInf(m.AvgPauseDuration, 0) {
		t.Errorf("AvgPauseDuration = %v, want finite", m.AvgPauseDuration)
	}
}

func TestRhythmConsistency(t *testing.T) {
	tests := []struct {
		name     string
		gaps     []float64
		expected float64
	}{
		{
			name:     "fewer than two gaps is neutral",
			gaps:     []float64{250},
			expected: NeutralConsistency,
		},
		{
			name:     "uniform gaps are perfectly consistent",
			gaps:     []float64{200, 200, 200, 200},
			expected: 100,
		},
		{
			name:     "all-zero gaps fall back to neutral",
			gaps:     []float64{0, 0, 0},
			expected: NeutralConsistency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rhythmConsistency(tt.gaps)
			if result != tt.expected {
				t.Errorf("rhythmConsistency(%v) = %v, want %v", tt.gaps, result, tt.expected)
			}
		})
	}

	t.Run("erratic gaps score low", func(t *testing.T) {
		result := rhythmConsistency([]float64{50, 4000, 30, 2500, 10})
		if result < 0 || result > 30 {
			t.Errorf("rhythmConsistency = %v, want a low score in [0,30]", result)
		}
	})
}
