package service

import (
	"math"
	"time"

	"typemood/internal/models"
	"typemood/internal/repository"
)

const (
	summaryWindowDays = 30
	trendWindowDays   = 7
)

// StatsService aggregates a visitor's session history for the dashboard
type StatsService struct {
	sessionRepo *repository.SessionRepository
}

// NewStatsService creates a new stats service
func NewStatsService(sessionRepo *repository.SessionRepository) *StatsService {
	return &StatsService{sessionRepo: sessionRepo}
}

// Summary computes 30-day averages and the last week's daily mood trends
func (s *StatsService) Summary(visitorID string) (*models.StatsSummary, error) {
	now := time.Now().UTC()
	sessions, err := s.sessionRepo.GetSince(visitorID, now.AddDate(0, 0, -summaryWindowDays))
	if err != nil {
		return nil, err
	}
	return buildSummary(sessions, now), nil
}

// buildSummary aggregates sessions relative to now. With no sessions the
// scores report the neutral midpoint, matching what the analyzer would say
// about a visitor it knows nothing about.
func buildSummary(sessions []models.TypingSession, now time.Time) *models.StatsSummary {
	if len(sessions) == 0 {
		return &models.StatsSummary{
			AvgFocus:      50,
			AvgStress:     50,
			AvgConfidence: 50,
			MoodTrends:    []models.MoodTrend{},
		}
	}

	var speed, focus, stress, confidence float64
	for _, s := range sessions {
		speed += s.AvgSpeedWPM
		focus += s.FocusScore
		stress += s.StressScore
		confidence += s.ConfidenceScore
	}
	count := float64(len(sessions))

	return &models.StatsSummary{
		TotalSessions: len(sessions),
		AvgSpeed:      round1(speed / count),
		AvgFocus:      round1(focus / count),
		AvgStress:     round1(stress / count),
		AvgConfidence: round1(confidence / count),
		MoodTrends:    buildTrends(sessions, now),
	}
}

// buildTrends averages scores per day over the trend window, oldest day
// first. Days without sessions are zero-filled so the chart axis stays
// continuous.
func buildTrends(sessions []models.TypingSession, now time.Time) []models.MoodTrend {
	trends := make([]models.MoodTrend, 0, trendWindowDays)

	for i := trendWindowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")

		var focus, stress, confidence float64
		count := 0
		for _, s := range sessions {
			if s.CreatedAt.UTC().Format("2006-01-02") != date {
				continue
			}
			focus += s.FocusScore
			stress += s.StressScore
			confidence += s.ConfidenceScore
			count++
		}

		trend := models.MoodTrend{Date: date}
		if count > 0 {
			trend.Focus = round1(focus / float64(count))
			trend.Stress = round1(stress / float64(count))
			trend.Confidence = round1(confidence / float64(count))
		}
		trends = append(trends, trend)
	}

	return trends
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
