package repository

import (
	"typemood/internal/database"
	"typemood/internal/models"
)

// ChallengeRepository handles challenge text database operations
type ChallengeRepository struct {
	db *database.DB
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(db *database.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// Count returns the number of stored challenges
func (r *ChallengeRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM challenges").Scan(&count)
	return count, err
}

// Create stores a new challenge text
func (r *ChallengeRepository) Create(text, difficulty string, targetWPM int) error {
	query := `
		INSERT INTO challenges (challenge_text, difficulty, target_wpm)
		VALUES (?, ?, ?)
	`
	_, err := r.db.Exec(query, text, difficulty, targetWPM)
	return err
}

// GetByDifficulty retrieves all challenges in a difficulty bucket
func (r *ChallengeRepository) GetByDifficulty(difficulty string) ([]models.Challenge, error) {
	query := `
		SELECT id, challenge_text, difficulty, target_wpm, created_at
		FROM challenges
		WHERE difficulty = ?
	`

	rows, err := r.db.Query(query, difficulty)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []models.Challenge
	for rows.Next() {
		var c models.Challenge
		err := rows.Scan(&c.ID, &c.ChallengeText, &c.Difficulty, &c.TargetWPM, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, c)
	}

	return challenges, rows.Err()
}
