package handlers

import (
	"typemood/internal/models"
)

// analysisResponse is the JSON body returned by the analyze endpoint
type analysisResponse struct {
	Success      bool            `json:"success"`
	SessionID    string          `json:"sessionId"`
	Analysis     analysisView    `json:"analysis"`
	MoodFeedback models.Feedback `json:"moodFeedback"`
}

type analysisView struct {
	Metrics      models.Metrics    `json:"metrics"`
	Scores       models.MoodScores `json:"scores"`
	DominantMood string            `json:"dominantMood"`
}

// sessionView is the JSON shape for one history entry
type sessionView struct {
	SessionID    string            `json:"sessionId"`
	Date         string            `json:"date"`
	TextPreview  string            `json:"textPreview"`
	TotalTime    float64           `json:"totalTime"`
	Metrics      models.Metrics    `json:"metrics"`
	Scores       models.MoodScores `json:"scores"`
	DominantMood string            `json:"dominantMood"`
}

const textPreviewLength = 50

func newSessionView(s models.TypingSession) sessionView {
	preview := s.TextContent
	if len(preview) > textPreviewLength {
		preview = preview[:textPreviewLength] + "..."
	}

	return sessionView{
		SessionID:    s.PublicID,
		Date:         s.CreatedAt.Format("2006-01-02 15:04:05"),
		TextPreview:  preview,
		TotalTime:    s.TotalTime,
		Metrics:      s.Metrics(),
		Scores:       s.Scores(),
		DominantMood: s.DominantMood,
	}
}
