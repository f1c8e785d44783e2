package repository

import (
	"database/sql"
	"time"

	"typemood/internal/database"
	"typemood/internal/models"
)

// SessionRepository handles typing session database operations
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, public_id, visitor_id, created_at, text_content, total_time,
       total_keystrokes, correction_count, correction_rate, avg_speed_wpm,
       pause_count, avg_pause_duration, burst_count, slow_phases, rhythm_consistency,
       focus_score, stress_score, confidence_score, dominant_mood`

// Create stores an analyzed session and fills in its database ID
func (r *SessionRepository) Create(session *models.TypingSession) error {
	query := `
		INSERT INTO typing_sessions
		(public_id, visitor_id, created_at, text_content, total_time,
		 total_keystrokes, correction_count, correction_rate, avg_speed_wpm,
		 pause_count, avg_pause_duration, burst_count, slow_phases, rhythm_consistency,
		 focus_score, stress_score, confidence_score, dominant_mood, keystroke_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		session.PublicID,
		session.VisitorID,
		session.CreatedAt,
		session.TextContent,
		session.TotalTime,
		session.TotalKeystrokes,
		session.CorrectionCount,
		session.CorrectionRate,
		session.AvgSpeedWPM,
		session.PauseCount,
		session.AvgPauseDuration,
		session.BurstCount,
		session.SlowPhases,
		session.RhythmConsistency,
		session.FocusScore,
		session.StressScore,
		session.ConfidenceScore,
		session.DominantMood,
		session.KeystrokeData,
	)
	if err != nil {
		return err
	}

	session.ID = id
	return nil
}

// GetRecent retrieves the most recent sessions for a visitor
func (r *SessionRepository) GetRecent(visitorID string, limit int) ([]models.TypingSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM typing_sessions
		WHERE visitor_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, visitorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetSince retrieves all sessions for a visitor created on or after the cutoff
func (r *SessionRepository) GetSince(visitorID string, since time.Time) ([]models.TypingSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM typing_sessions
		WHERE visitor_id = ? AND created_at >= ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, visitorID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetAll retrieves a visitor's full session history, newest first
func (r *SessionRepository) GetAll(visitorID string) ([]models.TypingSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM typing_sessions
		WHERE visitor_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, visitorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// PruneOlderThan deletes sessions created before the cutoff and returns the
// number of rows removed
func (r *SessionRepository) PruneOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec("DELETE FROM typing_sessions WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanSessions(rows *sql.Rows) ([]models.TypingSession, error) {
	var sessions []models.TypingSession
	for rows.Next() {
		var s models.TypingSession
		err := rows.Scan(
			&s.ID,
			&s.PublicID,
			&s.VisitorID,
			&s.CreatedAt,
			&s.TextContent,
			&s.TotalTime,
			&s.TotalKeystrokes,
			&s.CorrectionCount,
			&s.CorrectionRate,
			&s.AvgSpeedWPM,
			&s.PauseCount,
			&s.AvgPauseDuration,
			&s.BurstCount,
			&s.SlowPhases,
			&s.RhythmConsistency,
			&s.FocusScore,
			&s.StressScore,
			&s.ConfidenceScore,
			&s.DominantMood,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
