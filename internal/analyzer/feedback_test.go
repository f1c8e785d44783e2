package analyzer

import (
	"strings"
	"testing"

	"typemood/internal/models"
)

func TestSelectFeedbackPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		scores    models.MoodScores
		wantTitle string
	}{
		{
			name:      "high stress wins even against higher focus",
			scores:    models.MoodScores{Focus: 95, Stress: 71, Confidence: 90},
			wantTitle: "Elevated Stress Detected",
		},
		{
			name:      "stress at the threshold does not trigger",
			scores:    models.MoodScores{Focus: 80, Stress: 70, Confidence: 50},
			wantTitle: "Great Focus!",
		},
		{
			name:      "focus beats equal confidence",
			scores:    models.MoodScores{Focus: 75, Stress: 20, Confidence: 75},
			wantTitle: "Great Focus!",
		},
		{
			name:      "confidence when focus is below threshold",
			scores:    models.MoodScores{Focus: 50, Stress: 30, Confidence: 65},
			wantTitle: "High Confidence!",
		},
		{
			name:      "confidence above focus",
			scores:    models.MoodScores{Focus: 65, Stress: 30, Confidence: 70},
			wantTitle: "High Confidence!",
		},
		{
			name:      "everything mild falls back to balanced",
			scores:    models.MoodScores{Focus: 55, Stress: 45, Confidence: 50},
			wantTitle: "Balanced State",
		},
		{
			name:      "zero scores fall back to balanced",
			scores:    models.MoodScores{},
			wantTitle: "Balanced State",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := SelectFeedback(tt.scores)
			if fb.Title != tt.wantTitle {
				t.Errorf("SelectFeedback(%+v).Title = %q, want %q", tt.scores, fb.Title, tt.wantTitle)
			}
			if fb.Message == "" {
				t.Error("feedback message must not be empty")
			}
			if len(fb.Suggestions) == 0 {
				t.Error("feedback must carry suggestions")
			}
		})
	}
}

func TestSelectFeedbackInterpolatesScore(t *testing.T) {
	fb := SelectFeedback(models.MoodScores{Focus: 20, Stress: 86, Confidence: 10})

	if !strings.Contains(fb.Message, "86/100") {
		t.Errorf("message %q should contain the stress score", fb.Message)
	}
	if strings.Contains(fb.Message, "%") {
		t.Errorf("message %q still contains a format verb", fb.Message)
	}
}

func TestSelectFeedbackCopiesSuggestions(t *testing.T) {
	first := SelectFeedback(models.MoodScores{})
	first.Suggestions[0] = "mutated"

	second := SelectFeedback(models.MoodScores{})
	if second.Suggestions[0] == "mutated" {
		t.Error("suggestions slice is shared between calls")
	}
}
