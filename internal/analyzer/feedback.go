package analyzer

import (
	"fmt"

	"typemood/internal/models"
)

// feedbackRule maps a score condition to a feedback bundle. Rules are
// evaluated in order and the first match wins, which encodes the precedence
// stress > focus > confidence. The message may carry one %.0f verb filled
// with the score selected by pick; rules without a pick use the message
// verbatim.
type feedbackRule struct {
	applies     func(models.MoodScores) bool
	pick        func(models.MoodScores) float64
	title       string
	message     string
	suggestions []string
}

var feedbackRules = []feedbackRule{
	{
		applies: func(s models.MoodScores) bool { return s.Stress > stressAlertThreshold },
		pick:    func(s models.MoodScores) float64 { return s.Stress },
		title:   "Elevated Stress Detected",
		message: "Your typing patterns suggest some stress (score: %.0f/100).",
		suggestions: []string{
			"Take a few deep breaths before typing",
			"Try to maintain a steady rhythm",
			"Consider shorter typing sessions",
		},
	},
	{
		applies: func(s models.MoodScores) bool {
			return s.Focus >= dominantThreshold && s.Focus >= s.Confidence
		},
		pick:    func(s models.MoodScores) float64 { return s.Focus },
		title:   "Great Focus!",
		message: "You're showing excellent concentration with a focus score of %.0f/100.",
		suggestions: []string{
			"Keep up the consistent typing rhythm",
			"Your low correction rate shows good accuracy",
			"Consider taking short breaks to maintain this level",
		},
	},
	{
		applies: func(s models.MoodScores) bool { return s.Confidence >= dominantThreshold },
		pick:    func(s models.MoodScores) float64 { return s.Confidence },
		title:   "High Confidence!",
		message: "Your typing shows strong confidence with a score of %.0f/100.",
		suggestions: []string{
			"Your typing bursts indicate good flow",
			"Low correction rate shows self-assurance",
			"Try challenging yourself with faster targets",
		},
	},
	{
		applies: func(models.MoodScores) bool { return true },
		title:   "Balanced State",
		message: "Your typing shows a balanced emotional state.",
		suggestions: []string{
			"Good overall typing balance",
			"Consider focusing on speed or accuracy",
			"Regular practice will help improve consistency",
		},
	},
}

// SelectFeedback returns exactly one feedback bundle for the given scores.
func SelectFeedback(s models.MoodScores) models.Feedback {
	for _, rule := range feedbackRules {
		if !rule.applies(s) {
			continue
		}
		msg := rule.message
		if rule.pick != nil {
			msg = fmt.Sprintf(rule.message, rule.pick(s))
		}
		suggestions := make([]string, len(rule.suggestions))
		copy(suggestions, rule.suggestions)
		return models.Feedback{
			Title:       rule.title,
			Message:     msg,
			Suggestions: suggestions,
		}
	}

	// Unreachable: the last rule always applies.
	return models.Feedback{}
}
