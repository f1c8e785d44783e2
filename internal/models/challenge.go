package models

import "time"

// Challenge difficulty buckets
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Challenge is a stored practice text
type Challenge struct {
	ID            int64
	ChallengeText string
	Difficulty    string
	TargetWPM     int
	CreatedAt     time.Time
}

// DailyChallenge is the challenge payload served to a visitor, with the
// target WPM adapted to their recent performance.
type DailyChallenge struct {
	ChallengeText string `json:"challengeText"`
	TargetWPM     int    `json:"targetWpm"`
	Difficulty    string `json:"difficulty"`
	Date          string `json:"date"`
}
