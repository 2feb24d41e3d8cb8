package quiz

import (
	"fmt"
	"strings"

	"github.com/Igaki12/news-network-api/domain/article"
)

// Choice is one answer option with a stable identity within its question
type Choice struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is a validated multiple-choice question
type Question struct {
	Prompt      string   `json:"prompt"`
	Choices     []Choice `json:"choices"`
	CorrectText string   `json:"correctText"`
}

// Normalize converts a raw question record into a canonical multiple-choice
// question. It returns nil when the record is absent, the prompt is not a
// non-empty string, or no non-blank string choice survives filtering.
//
// The first surviving choice is flagged correct. This is an upstream data
// contract of the question generator, not an inference; if the upstream
// format ever shuffles correctness this function must be revisited. Choice
// IDs combine position and text so duplicate texts at different positions
// stay distinct. The function is pure; presentation-layer shuffling happens
// after normalization, never inside it.
func Normalize(raw *article.RawQuestion) *Question {
	if raw == nil {
		return nil
	}
	prompt := string(raw.Question)
	if prompt == "" {
		return nil
	}
	if len(raw.Choices) == 0 {
		return nil
	}

	cleaned := make([]string, 0, len(raw.Choices))
	for _, choice := range raw.Choices {
		text := string(choice)
		if strings.TrimSpace(text) == "" {
			continue
		}
		cleaned = append(cleaned, text)
	}
	if len(cleaned) == 0 {
		return nil
	}

	choices := make([]Choice, len(cleaned))
	for i, text := range cleaned {
		choices[i] = Choice{
			ID:        fmt.Sprintf("%d-%s", i, text),
			Text:      text,
			IsCorrect: i == 0,
		}
	}

	return &Question{
		Prompt:      prompt,
		Choices:     choices,
		CorrectText: cleaned[0],
	}
}
