package models

import "time"

// Keystroke event types as reported by the capture script.
const (
	EventDown = "down"
	EventUp   = "up"
)

// KeystrokeEvent is a single key event recorded client-side during a session.
// Timestamp is milliseconds since the session started.
type KeystrokeEvent struct {
	Key       string  `json:"key"`
	Timestamp float64 `json:"timestamp"`
	Type      string  `json:"eventType"`
}

// IsDown reports whether the event is a key-down. Older capture scripts only
// recorded key-down events and omitted the type field, so an empty type is
// treated as down.
func (e KeystrokeEvent) IsDown() bool {
	return e.Type == "" || e.Type == EventDown
}

// SessionInput is a completed typing session as submitted for analysis.
// It is frozen at submission and never mutated by the analyzer.
type SessionInput struct {
	Text             string           `json:"text"`
	TotalTimeSeconds float64          `json:"totalTime"`
	Events           []KeystrokeEvent `json:"keystrokeData"`
}

// Metrics holds the primitive timing metrics derived from a session.
type Metrics struct {
	AvgSpeedWPM       float64 `json:"avgSpeedWpm"`
	TotalKeystrokes   int     `json:"totalKeystrokes"`
	CorrectionCount   int     `json:"correctionCount"`
	CorrectionRate    float64 `json:"correctionRate"`
	PauseCount        int     `json:"pauseCount"`
	AvgPauseDuration  float64 `json:"avgPauseDuration"`
	BurstCount        int     `json:"burstCount"`
	SlowPhases        int     `json:"slowPhases"`
	RhythmConsistency float64 `json:"rhythmConsistency"`
}

// MoodScores are the three heuristic scores, each clamped into [0,100].
type MoodScores struct {
	Focus      float64 `json:"focusScore"`
	Stress     float64 `json:"stressScore"`
	Confidence float64 `json:"confidenceScore"`
}

// Feedback is the descriptive bundle selected from the mood scores.
type Feedback struct {
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// TypingSession is a persisted, fully analyzed session.
type TypingSession struct {
	ID                int64
	PublicID          string
	VisitorID         string
	CreatedAt         time.Time
	TextContent       string
	TotalTime         float64
	TotalKeystrokes   int
	CorrectionCount   int
	CorrectionRate    float64
	AvgSpeedWPM       float64
	PauseCount        int
	AvgPauseDuration  float64
	BurstCount        int
	SlowPhases        int
	RhythmConsistency float64
	FocusScore        float64
	StressScore       float64
	ConfidenceScore   float64
	DominantMood      string
	KeystrokeData     string
}

// Metrics reassembles the metric fields of a stored session.
func (s *TypingSession) Metrics() Metrics {
	return Metrics{
		AvgSpeedWPM:       s.AvgSpeedWPM,
		TotalKeystrokes:   s.TotalKeystrokes,
		CorrectionCount:   s.CorrectionCount,
		CorrectionRate:    s.CorrectionRate,
		PauseCount:        s.PauseCount,
		AvgPauseDuration:  s.AvgPauseDuration,
		BurstCount:        s.BurstCount,
		SlowPhases:        s.SlowPhases,
		RhythmConsistency: s.RhythmConsistency,
	}
}

// Scores reassembles the mood scores of a stored session.
func (s *TypingSession) Scores() MoodScores {
	return MoodScores{
		Focus:      s.FocusScore,
		Stress:     s.StressScore,
		Confidence: s.ConfidenceScore,
	}
}
