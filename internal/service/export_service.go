package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"typemood/internal/models"
	"typemood/internal/repository"
)

// ExportService writes a visitor's session history as CSV
type ExportService struct {
	sessionRepo *repository.SessionRepository
}

// NewExportService creates a new export service
func NewExportService(sessionRepo *repository.SessionRepository) *ExportService {
	return &ExportService{sessionRepo: sessionRepo}
}

var csvHeader = []string{
	"Date", "Text Length", "Total Time (s)", "Keystrokes", "Backspaces",
	"Speed (WPM)", "Pauses", "Avg Pause (s)", "Bursts", "Slow Phases",
	"Rhythm Consistency", "Focus Score", "Stress Score", "Confidence Score",
	"Dominant Mood",
}

// WriteCSV streams the visitor's full history, newest first
func (s *ExportService) WriteCSV(w io.Writer, visitorID string) error {
	sessions, err := s.sessionRepo.GetAll(visitorID)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, session := range sessions {
		if err := writer.Write(csvRow(session)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportFilename returns a dated attachment name for downloads
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("typing_history_%s.csv", now.Format("20060102"))
}

func csvRow(s models.TypingSession) []string {
	return []string{
		s.CreatedAt.Format("2006-01-02 15:04:05"),
		strconv.Itoa(len(s.TextContent)),
		formatFloat(s.TotalTime),
		strconv.Itoa(s.TotalKeystrokes),
		strconv.Itoa(s.CorrectionCount),
		formatFloat(s.AvgSpeedWPM),
		strconv.Itoa(s.PauseCount),
		formatFloat(s.AvgPauseDuration),
		strconv.Itoa(s.BurstCount),
		strconv.Itoa(s.SlowPhases),
		formatFloat(s.RhythmConsistency),
		formatFloat(s.FocusScore),
		formatFloat(s.StressScore),
		formatFloat(s.ConfidenceScore),
		s.DominantMood,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
