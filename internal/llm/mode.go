package llm

import (
	"errors"
	"strings"
)

// Mode selects both the prompt template and the expected output schema.
type Mode string

const (
	ModeFlashcards Mode = "flashcards"
	ModeQuiz       Mode = "quiz"
	ModeDeepDive   Mode = "deep-dive"
)

// ErrInvalidMode indicates an unrecognized generation mode.
var ErrInvalidMode = errors.New("invalid generation mode")

// ParseMode normalizes and validates a mode string.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ModeFlashcards):
		return ModeFlashcards, nil
	case string(ModeQuiz):
		return ModeQuiz, nil
	case string(ModeDeepDive):
		return ModeDeepDive, nil
	default:
		return "", ErrInvalidMode
	}
}
