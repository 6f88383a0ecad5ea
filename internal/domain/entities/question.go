package entities

import (
	"fmt"
	"math/rand"
)

// minOptions is the smallest option set that still makes the question a choice.
const minOptions = 2

// ValidationError describes why a candidate question record was rejected.
// Field names the offending attribute so loaders can report precisely.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question: %s: %s", e.Field, e.Reason)
}

// Question is a validated multiple-choice question. Prompt, Options and
// Answer never change after construction; per-turn display order comes from
// ShuffledOptions, which works on a copy.
type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

// NewQuestion validates a candidate record and builds a Question.
// The record is inspected as a whole: there must be at least two options,
// and the answer must be one of them.
func NewQuestion(prompt string, options []string, answer string) (*Question, error) {
	if prompt == "" {
		return nil, &ValidationError{Field: "question", Reason: "prompt must not be empty"}
	}

	if len(options) < minOptions {
		return nil, &ValidationError{
			Field:  "options",
			Reason: fmt.Sprintf("need at least %d options, got %d", minOptions, len(options)),
		}
	}

	found := false
	for _, opt := range options {
		if opt == answer {
			found = true
			break
		}
	}
	if !found {
		return nil, &ValidationError{Field: "answer", Reason: "answer must be one of the options"}
	}

	return &Question{
		Prompt:  prompt,
		Options: append([]string(nil), options...),
		Answer:  answer,
	}, nil
}

// ShuffledOptions returns a freshly permuted copy of the options for one
// presentation. The canonical option order stays untouched, so repeated
// presentations of the same question are independent.
func (q *Question) ShuffledOptions(rng *rand.Rand) []string {
	out := append([]string(nil), q.Options...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
