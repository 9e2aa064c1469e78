package llm

import (
	_ "embed"
	"fmt"
)

var (
	//go:embed prompts/flashcards.txt
	promptFlashcards string
	//go:embed prompts/quiz.txt
	promptQuiz string
	//go:embed prompts/deep_dive.txt
	promptDeepDive string
)

// MaxPromptChars is the input ceiling applied by the orchestrator before
// templating. Content beyond the limit is silently dropped.
const MaxPromptChars = 10000

const promptSeparator = "\n\nTEXT TO PROCESS:\n"

// BuildPrompt produces the full instruction string for a mode and input text.
// The mode is validated before any model call is made.
func BuildPrompt(mode Mode, text string) (string, error) {
	template, err := promptTemplate(mode)
	if err != nil {
		return "", err
	}
	return template + promptSeparator + text, nil
}

func promptTemplate(mode Mode) (string, error) {
	switch mode {
	case ModeFlashcards:
		return promptFlashcards, nil
	case ModeQuiz:
		return promptQuiz, nil
	case ModeDeepDive:
		return promptDeepDive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}
}

// TruncateText caps text at max characters (runes), dropping the remainder.
func TruncateText(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
