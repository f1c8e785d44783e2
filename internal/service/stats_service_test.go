package service

import (
	"testing"
	"time"

	"typemood/internal/models"
)

func sessionOn(day time.Time, focus, stress, confidence, speed float64) models.TypingSession {
	return models.TypingSession{
		CreatedAt:       day,
		FocusScore:      focus,
		StressScore:     stress,
		ConfidenceScore: confidence,
		AvgSpeedWPM:     speed,
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	summary := buildSummary(nil, now)

	if summary.TotalSessions != 0 {
		t.Errorf("TotalSessions = %d, want 0", summary.TotalSessions)
	}
	if summary.AvgSpeed != 0 {
		t.Errorf("AvgSpeed = %v, want 0", summary.AvgSpeed)
	}
	if summary.AvgFocus != 50 || summary.AvgStress != 50 || summary.AvgConfidence != 50 {
		t.Errorf("expected neutral 50 averages, got %+v", summary)
	}
	if summary.MoodTrends == nil || len(summary.MoodTrends) != 0 {
		t.Errorf("MoodTrends should be an empty slice, got %v", summary.MoodTrends)
	}
}

func TestBuildSummaryAverages(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	sessions := []models.TypingSession{
		sessionOn(now, 80, 30, 70, 45),
		sessionOn(now.AddDate(0, 0, -1), 60, 50, 90, 55),
	}

	summary := buildSummary(sessions, now)

	if summary.TotalSessions != 2 {
		t.Fatalf("TotalSessions = %d, want 2", summary.TotalSessions)
	}
	if summary.AvgSpeed != 50 {
		t.Errorf("AvgSpeed = %v, want 50", summary.AvgSpeed)
	}
	if summary.AvgFocus != 70 {
		t.Errorf("AvgFocus = %v, want 70", summary.AvgFocus)
	}
	if summary.AvgStress != 40 {
		t.Errorf("AvgStress = %v, want 40", summary.AvgStress)
	}
	if summary.AvgConfidence != 80 {
		t.Errorf("AvgConfidence = %v, want 80", summary.AvgConfidence)
	}
}

func TestBuildTrendsZeroFillsAndOrders(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	sessions := []models.TypingSession{
		sessionOn(now, 80, 20, 60, 40),
		sessionOn(now, 60, 40, 80, 50),
		sessionOn(now.AddDate(0, 0, -3), 90, 10, 50, 60),
	}

	trends := buildTrends(sessions, now)

	if len(trends) != trendWindowDays {
		t.Fatalf("len(trends) = %d, want %d", len(trends), trendWindowDays)
	}

	// Oldest day first, today last
	if trends[0].Date != "2026-08-25" {
		t.Errorf("trends[0].Date = %q, want 2026-08-25", trends[0].Date)
	}
	if trends[6].Date != "2026-08-31" {
		t.Errorf("trends[6].Date = %q, want 2026-08-31", trends[6].Date)
	}

	// Today averages the two sessions
	if trends[6].Focus != 70 || trends[6].Stress != 30 || trends[6].Confidence != 70 {
		t.Errorf("today's trend = %+v, want focus 70, stress 30, confidence 70", trends[6])
	}

	// Three days back carries its single session
	if trends[3].Focus != 90 {
		t.Errorf("trends[3].Focus = %v, want 90", trends[3].Focus)
	}

	// Empty days are zero-filled
	if trends[1].Focus != 0 || trends[1].Stress != 0 || trends[1].Confidence != 0 {
		t.Errorf("empty day should be zero-filled, got %+v", trends[1])
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{50.0, 50.0},
		{66.666, 66.7},
		{33.333, 33.3},
		{0.05, 0.1},
	}

	for _, tt := range tests {
		if result := round1(tt.in); result != tt.expected {
			t.Errorf("round1(%v) = %v, want %v", tt.in, result, tt.expected)
		}
	}
}
