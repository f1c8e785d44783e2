package service

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"typemood/internal/models"
	"typemood/internal/repository"
)

const (
	defaultTargetWPM = 40
	minTargetWPM     = 30

	// Recent sessions considered when adapting the target
	targetSampleSize = 5
)

// ChallengeService picks practice texts with a target WPM adapted to the
// visitor's recent performance
type ChallengeService struct {
	challengeRepo *repository.ChallengeRepository
	sessionRepo   *repository.SessionRepository
}

// NewChallengeService creates a new challenge service
func NewChallengeService(challengeRepo *repository.ChallengeRepository, sessionRepo *repository.SessionRepository) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		sessionRepo:   sessionRepo,
	}
}

// defaultChallenges seed the challenges table on first startup
var defaultChallenges = []struct {
	text       string
	difficulty string
	targetWPM  int
}{
	{
		text:       "The quick brown fox jumps over the lazy dog. This pangram contains every letter of the alphabet and is perfect for typing practice.",
		difficulty: models.DifficultyEasy,
		targetWPM:  30,
	},
	{
		text:       "Practice makes progress. A few minutes of steady, relaxed typing each day will do more for your rhythm than an hour of rushing.",
		difficulty: models.DifficultyEasy,
		targetWPM:  30,
	},
	{
		text:       "In a hole in the ground there lived a hobbit. Not a nasty, dirty, wet hole filled with the ends of worms and an oozy smell.",
		difficulty: models.DifficultyMedium,
		targetWPM:  50,
	},
	{
		text:       "It was the best of times, it was the worst of times, it was the age of wisdom, it was the age of foolishness.",
		difficulty: models.DifficultyMedium,
		targetWPM:  50,
	},
	{
		text:       "To be or not to be, that is the question. Whether 'tis nobler in the mind to suffer the slings and arrows of outrageous fortune.",
		difficulty: models.DifficultyHard,
		targetWPM:  65,
	},
	{
		text:       "All happy families are alike; each unhappy family is unhappy in its own way. Everything was in confusion in the Oblonskys' house.",
		difficulty: models.DifficultyHard,
		targetWPM:  65,
	},
}

// SeedDefaultChallenges inserts the built-in challenge texts if the table is empty
func (s *ChallengeService) SeedDefaultChallenges() error {
	count, err := s.challengeRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, c := range defaultChallenges {
		if err := s.challengeRepo.Create(c.text, c.difficulty, c.targetWPM); err != nil {
			return err
		}
	}
	return nil
}

// DailyChallenge picks a practice text for the visitor. The target WPM is 10%
// above their recent average speed, floored at the minimum target; the
// difficulty bucket follows the target.
func (s *ChallengeService) DailyChallenge(visitorID string) (*models.DailyChallenge, error) {
	recent, err := s.sessionRepo.GetRecent(visitorID, targetSampleSize)
	if err != nil {
		return nil, err
	}

	speeds := make([]float64, len(recent))
	for i, session := range recent {
		speeds[i] = session.AvgSpeedWPM
	}
	target := targetWPMFor(speeds)
	difficulty := difficultyFor(target)

	challenges, err := s.challengeRepo.GetByDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	if len(challenges) == 0 {
		return nil, errors.New("no challenges available for difficulty " + difficulty)
	}

	picked := challenges[rand.Intn(len(challenges))]

	return &models.DailyChallenge{
		ChallengeText: picked.ChallengeText,
		TargetWPM:     target,
		Difficulty:    difficulty,
		Date:          time.Now().Format("2006-01-02"),
	}, nil
}

// targetWPMFor derives the adaptive target: 10% above the average of recent
// speeds, never below the minimum. Visitors without history get the default.
func targetWPMFor(recentSpeeds []float64) int {
	if len(recentSpeeds) == 0 {
		return defaultTargetWPM
	}

	var sum float64
	for _, s := range recentSpeeds {
		sum += s
	}
	avg := sum / float64(len(recentSpeeds))

	target := int(math.Round(avg * 1.1))
	if target < minTargetWPM {
		return minTargetWPM
	}
	return target
}

// difficultyFor buckets a target WPM: easy below 40, medium below 60, hard above
func difficultyFor(targetWPM int) string {
	switch {
	case targetWPM < 40:
		return models.DifficultyEasy
	case targetWPM < 60:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}
