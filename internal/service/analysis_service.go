package service

import (
	"encoding/json"
	"fmt"
	"time"

	"typemood/internal/analyzer"
	"typemood/internal/models"
	"typemood/internal/repository"

	"github.com/google/uuid"
)

// AnalysisService runs the typing analyzer over submitted sessions and
// persists the results
type AnalysisService struct {
	sessionRepo *repository.SessionRepository
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(sessionRepo *repository.SessionRepository) *AnalysisService {
	return &AnalysisService{sessionRepo: sessionRepo}
}

// AnalysisResult bundles everything produced by one analysis pass
type AnalysisResult struct {
	Session  *models.TypingSession
	Metrics  models.Metrics
	Scores   models.MoodScores
	Feedback models.Feedback
}

// AnalyzeSession derives metrics and mood scores from a frozen submission,
// stores the session, and returns the full result. Input is assumed to have
// passed boundary validation; the analyzer itself never fails.
func (s *AnalysisService) AnalyzeSession(visitorID string, input models.SessionInput) (*AnalysisResult, error) {
	metrics := analyzer.Extract(input)
	scores, feedback := analyzer.Score(metrics)

	rawEvents, err := json.Marshal(input.Events)
	if err != nil {
		return nil, fmt.Errorf("failed to encode keystroke data: %w", err)
	}

	session := &models.TypingSession{
		PublicID:          uuid.New().String(),
		VisitorID:         visitorID,
		CreatedAt:         time.Now().UTC(),
		TextContent:       input.Text,
		TotalTime:         input.TotalTimeSeconds,
		TotalKeystrokes:   metrics.TotalKeystrokes,
		CorrectionCount:   metrics.CorrectionCount,
		CorrectionRate:    metrics.CorrectionRate,
		AvgSpeedWPM:       metrics.AvgSpeedWPM,
		PauseCount:        metrics.PauseCount,
		AvgPauseDuration:  metrics.AvgPauseDuration,
		BurstCount:        metrics.BurstCount,
		SlowPhases:        metrics.SlowPhases,
		RhythmConsistency: metrics.RhythmConsistency,
		FocusScore:        scores.Focus,
		StressScore:       scores.Stress,
		ConfidenceScore:   scores.Confidence,
		DominantMood:      analyzer.DominantMood(scores),
		KeystrokeData:     string(rawEvents),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &AnalysisResult{
		Session:  session,
		Metrics:  metrics,
		Scores:   scores,
		Feedback: feedback,
	}, nil
}

// GetRecentSessions retrieves a visitor's most recent sessions
func (s *AnalysisService) GetRecentSessions(visitorID string, limit int) ([]models.TypingSession, error) {
	return s.sessionRepo.GetRecent(visitorID, limit)
}

// PruneSessions removes sessions older than the retention window
func (s *AnalysisService) PruneSessions(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	return s.sessionRepo.PruneOlderThan(cutoff)
}
