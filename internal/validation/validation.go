package validation

import (
	"fmt"
	"strings"

	"typemood/internal/models"
)

const (
	// MaxTextLength caps submitted text to keep payloads sane
	MaxTextLength = 10000
	// MaxEvents caps the keystroke log per submission
	MaxEvents = 50000
	// MaxTotalTimeSeconds rejects sessions claiming to run longer than an hour
	MaxTotalTimeSeconds = 3600
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSessionInput checks an analysis submission before it reaches the analyzer
func ValidateSessionInput(input models.SessionInput) error {
	if strings.TrimSpace(input.Text) == "" {
		return ValidationError{Field: "text", Message: "text is required"}
	}
	if len(input.Text) > MaxTextLength {
		return ValidationError{Field: "text", Message: fmt.Sprintf("text must be at most %d characters", MaxTextLength)}
	}
	if input.TotalTimeSeconds <= 0 {
		return ValidationError{Field: "totalTime", Message: "totalTime must be positive"}
	}
	if input.TotalTimeSeconds > MaxTotalTimeSeconds {
		return ValidationError{Field: "totalTime", Message: fmt.Sprintf("totalTime must be at most %d seconds", MaxTotalTimeSeconds)}
	}
	if len(input.Events) > MaxEvents {
		return ValidationError{Field: "keystrokeData", Message: fmt.Sprintf("at most %d keystroke events allowed", MaxEvents)}
	}
	return nil
}
