package service

import (
	"testing"

	"typemood/internal/models"
)

func TestTargetWPMFor(t *testing.T) {
	tests := []struct {
		name     string
		speeds   []float64
		expected int
	}{
		{
			name:     "no history uses default",
			speeds:   nil,
			expected: 40,
		},
		{
			name:     "ten percent above average",
			speeds:   []float64{50, 60, 70},
			expected: 66,
		},
		{
			name:     "slow typists get the floor",
			speeds:   []float64{10, 12, 8},
			expected: 30,
		},
		{
			name:     "single session",
			speeds:   []float64{100},
			expected: 110,
		},
		{
			name:     "zero speeds floor at minimum",
			speeds:   []float64{0, 0},
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := targetWPMFor(tt.speeds)
			if result != tt.expected {
				t.Errorf("targetWPMFor(%v) = %d, want %d", tt.speeds, result, tt.expected)
			}
		})
	}
}

func TestDifficultyFor(t *testing.T) {
	tests := []struct {
		targetWPM int
		expected  string
	}{
		{0, models.DifficultyEasy},
		{30, models.DifficultyEasy},
		{39, models.DifficultyEasy},
		{40, models.DifficultyMedium},
		{59, models.DifficultyMedium},
		{60, models.DifficultyHard},
		{120, models.DifficultyHard},
	}

	for _, tt := range tests {
		if result := difficultyFor(tt.targetWPM); result != tt.expected {
			t.Errorf("difficultyFor(%d) = %v, want %v", tt.targetWPM, result, tt.expected)
		}
	}
}

func TestDefaultChallengesCoverAllDifficulties(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range defaultChallenges {
		if c.text == "" {
			t.Error("default challenge with empty text")
		}
		seen[c.difficulty] = true
	}

	for _, difficulty := range []string{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		if !seen[difficulty] {
			t.Errorf("no default challenge for difficulty %q", difficulty)
		}
	}
}
