package service

import "quiz_portal_backend/internal/model"

// Grade scores a set of submitted answers against a question snapshot.
// An answer is correct only on an exact, case-sensitive match with the
// question's correct option. Missing or unknown answers count as
// incorrect, so the score is always in [0, len(questions)].
func Grade(questions []model.Question, answers map[uint]string) int {
	score := 0
	for _, q := range questions {
		selected, ok := answers[q.ID]
		if ok && selected == q.CorrectOption {
			score++
		}
	}
	return score
}
