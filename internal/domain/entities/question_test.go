package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion_Valid(t *testing.T) {
	q, err := NewQuestion("2+2?", []string{"3", "4", "5"}, "4")
	require.NoError(t, err)

	assert.Equal(t, "2+2?", q.Prompt)
	assert.Equal(t, []string{"3", "4", "5"}, q.Options)
	assert.Equal(t, "4", q.Answer)
}

func TestNewQuestion_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		prompt  string
		options []string
		answer  string
		field   string
	}{
		{
			name:    "empty prompt",
			prompt:  "",
			options: []string{"a", "b"},
			answer:  "a",
			field:   "question",
		},
		{
			name:    "single option",
			prompt:  "q",
			options: []string{"a"},
			answer:  "a",
			field:   "options",
		},
		{
			name:    "no options",
			prompt:  "q",
			options: nil,
			answer:  "a",
			field:   "options",
		},
		{
			name:    "answer not among options",
			prompt:  "q",
			options: []string{"a", "b"},
			answer:  "c",
			field:   "answer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := NewQuestion(tc.prompt, tc.options, tc.answer)
			require.Error(t, err)
			assert.Nil(t, q)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestNewQuestion_CopiesOptions(t *testing.T) {
	options := []string{"a", "b"}
	q, err := NewQuestion("q", options, "a")
	require.NoError(t, err)

	options[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, q.Options)
}

func TestShuffledOptions_LeavesCanonicalOrderUntouched(t *testing.T) {
	q, err := NewQuestion("q", []string{"a", "b", "c", "d"}, "a")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := q.ShuffledOptions(rng)
		assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, shuffled)
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options)
}
