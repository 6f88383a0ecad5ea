package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"trivia-cli/internal/domain/entities"
)

// questionRecord mirrors one raw entry in the questions file.
type questionRecord struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// QuestionRepository loads trivia questions from a JSON file.
// Malformed entries are reported and skipped rather than failing the load;
// only a missing or unparseable file is an error.
type QuestionRepository struct {
	logger *zap.Logger
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(logger *zap.Logger) *QuestionRepository {
	return &QuestionRepository{logger: logger}
}

// LoadFromFile reads a JSON array of question records from path and returns
// the valid ones. Each invalid entry produces one diagnostic line and is
// dropped; the rest of the file still loads.
func (r *QuestionRepository) LoadFromFile(path string) ([]*entities.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	var records []questionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse questions file %s: %w", path, err)
	}

	questions := make([]*entities.Question, 0, len(records))
	for i, rec := range records {
		question, err := entities.NewQuestion(rec.Question, rec.Options, rec.Answer)
		if err != nil {
			r.logger.Warn("skipping invalid question",
				zap.Int("entry", i),
				zap.String("question", rec.Question),
				zap.Error(err),
			)
			continue
		}
		questions = append(questions, question)
	}

	return questions, nil
}
