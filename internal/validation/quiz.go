package validation

import (
	"strings"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/spf13/cast"
)

// NormalizeQuiz turns the entered quiz into the persisted form.
//
// A question is kept only when it has text and at least one non-empty option;
// only non-empty options are persisted and the correct answer index is moved
// to its position in the filtered option list. An answer that pointed at an
// empty option falls back to the first remaining option.
func NormalizeQuiz(inputs []models.QuizInput) []models.QuizQuestion {
	quiz := make([]models.QuizQuestion, 0, len(inputs))

	for _, in := range inputs {
		question := strings.TrimSpace(in.Question)
		options := make([]string, 0, len(in.Options))
		remapped := 0

		// unparsable answers fall back to the first option
		selected, err := cast.ToIntE(strings.TrimSpace(in.CorrectAnswer))
		if err != nil {
			selected = 0
		}

		for j, opt := range in.Options {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			if j == selected {
				remapped = len(options)
			}
			options = append(options, opt)
		}

		if question == "" || len(options) == 0 {
			continue
		}

		quiz = append(quiz, models.QuizQuestion{
			Question:      question,
			Options:       options,
			CorrectAnswer: remapped,
		})
	}

	return quiz
}

// NormalizeLeadQuestions drops empty lead generation questions
func NormalizeLeadQuestions(inputs []models.LeadQuestion) []string {
	out := make([]string, 0, len(inputs))
	for _, q := range inputs {
		if text := strings.TrimSpace(q.Question); text != "" {
			out = append(out, text)
		}
	}
	return out
}
