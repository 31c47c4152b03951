package service

import (
	"context"
	"errors"

	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/repository"
	"quiz_portal_backend/internal/util"
	"quiz_portal_backend/pkg/logger"
	"quiz_portal_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttemptService runs the attempt lifecycle: starting an attempt freezes
// the question set, and both the stepwise and the bulk path grade against
// that frozen set, so the two produce the same score for the same answers.
type AttemptService struct {
	QuizSetRepo  *repository.QuizSetRepository
	QuestionRepo *repository.QuestionRepository
	AttemptRepo  *repository.AttemptRepository
	Snapshots    repository.SnapshotStore
}

func NewAttemptService(
	quizSetRepo *repository.QuizSetRepository,
	questionRepo *repository.QuestionRepository,
	attemptRepo *repository.AttemptRepository,
	snapshots repository.SnapshotStore,
) *AttemptService {
	return &AttemptService{
		QuizSetRepo:  quizSetRepo,
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
		Snapshots:    snapshots,
	}
}

// AttemptQuestion is the student-facing question view: the correct
// option never leaves the server.
type AttemptQuestion struct {
	ID      uint             `json:"id"`
	Text    string           `json:"text"`
	Options model.StringList `json:"options"`
}

func sanitize(questions []model.Question) []AttemptQuestion {
	out := make([]AttemptQuestion, len(questions))
	for i, q := range questions {
		out[i] = AttemptQuestion{ID: q.ID, Text: q.Text, Options: q.Options}
	}
	return out
}

type StartAttemptResponse struct {
	Attempt   *model.QuizAttempt `json:"attempt"`
	Questions []AttemptQuestion  `json:"questions"`
}

// Start fetches the question set once, freezes it under the attempt id
// and returns the sanitized view of the same snapshot.
func (s *AttemptService) Start(ctx context.Context, userID, quizSetID uint) (*StartAttemptResponse, error) {
	if _, err := s.QuizSetRepo.FindByID(quizSetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizSetNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByQuizSet(quizSetID)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		UserID:        userID,
		QuizSetID:     quizSetID,
		Status:        model.AttemptActive,
		QuestionCount: len(questions),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	if err := s.Snapshots.Save(ctx, attempt.ID, questions); err != nil {
		// Grading falls back to the live question set on a miss; losing
		// the snapshot degrades consistency, not correctness.
		logger.Log.Warn("failed to save attempt snapshot",
			zap.String("attempt", attempt.ID), zap.Error(err))
	}

	return &StartAttemptResponse{
		Attempt:   attempt,
		Questions: sanitize(questions),
	}, nil
}

func (s *AttemptService) ownedActiveAttempt(userID uint, attemptID string) (*model.QuizAttempt, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, util.ErrNotAttemptOwner
	}
	if attempt.Status != model.AttemptActive {
		return nil, util.ErrAttemptCompleted
	}
	return attempt, nil
}

func (s *AttemptService) frozenQuestions(ctx context.Context, attempt *model.QuizAttempt) ([]model.Question, error) {
	questions, err := s.Snapshots.Get(ctx, attempt.ID)
	if err == nil {
		return questions, nil
	}
	if !errors.Is(err, repository.ErrSnapshotMiss) {
		logger.Log.Warn("snapshot read failed, falling back to database",
			zap.String("attempt", attempt.ID), zap.Error(err))
	}
	return s.QuestionRepo.ListByQuizSet(attempt.QuizSetID)
}

// Questions returns the frozen question set of an attempt, sanitized.
func (s *AttemptService) Questions(ctx context.Context, userID uint, attemptID string) ([]AttemptQuestion, error) {
	attempt, err := s.ownedActiveAttempt(userID, attemptID)
	if err != nil {
		return nil, err
	}
	questions, err := s.frozenQuestions(ctx, attempt)
	if err != nil {
		return nil, err
	}
	return sanitize(questions), nil
}

// SubmitBulk grades a full answer map in one shot and records the result.
// The result row and the attempt completion share one transaction.
func (s *AttemptService) SubmitBulk(ctx context.Context, userID uint, attemptID string, answers map[uint]string) (*model.QuizResult, error) {
	attempt, err := s.ownedActiveAttempt(userID, attemptID)
	if err != nil {
		return nil, err
	}

	questions, err := s.frozenQuestions(ctx, attempt)
	if err != nil {
		return nil, err
	}

	result := &model.QuizResult{
		UserID:    userID,
		QuizSetID: attempt.QuizSetID,
		AttemptID: attempt.ID,
		Score:     Grade(questions, answers),
		Total:     len(questions),
	}
	if err := s.AttemptRepo.Complete(attempt, result); err != nil {
		return nil, err
	}

	if err := s.Snapshots.Delete(ctx, attempt.ID); err != nil {
		logger.Log.Warn("failed to drop attempt snapshot",
			zap.String("attempt", attempt.ID), zap.Error(err))
	}

	monitoring.GradedAttempts.WithLabelValues("bulk").Inc()
	return result, nil
}

type StepAnswerResponse struct {
	Correct   bool             `json:"correct"`
	Remaining int              `json:"remaining"`
	Next      *AttemptQuestion `json:"next,omitempty"`
}

// Answer records one stepwise answer and points the student at the next
// unanswered question. Re-answering a question is rejected; the progress
// cursor lives on the attempt, never on the shared question row.
func (s *AttemptService) Answer(ctx context.Context, userID uint, attemptID string, questionID uint, selected string) (*StepAnswerResponse, error) {
	attempt, err := s.ownedActiveAttempt(userID, attemptID)
	if err != nil {
		return nil, err
	}

	questions, err := s.frozenQuestions(ctx, attempt)
	if err != nil {
		return nil, err
	}

	var question *model.Question
	for i := range questions {
		if questions[i].ID == questionID {
			question = &questions[i]
			break
		}
	}
	if question == nil {
		return nil, util.ErrQuestionNotInAttempt
	}

	if _, err := s.AttemptRepo.FindAnswer(attempt.ID, questionID); err == nil {
		return nil, util.ErrAlreadyAnswered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	answer := &model.AttemptAnswer{
		AttemptID:  attempt.ID,
		QuestionID: questionID,
		Selected:   selected,
		Correct:    selected == question.CorrectOption,
	}
	if err := s.AttemptRepo.CreateAnswer(answer); err != nil {
		return nil, err
	}

	answered := map[uint]bool{questionID: true}
	existing, err := s.AttemptRepo.ListAnswers(attempt.ID)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		answered[a.QuestionID] = true
	}

	resp := &StepAnswerResponse{Correct: answer.Correct}
	for i := range questions {
		if !answered[questions[i].ID] {
			resp.Remaining++
			if resp.Next == nil {
				next := sanitize(questions[i : i+1])[0]
				resp.Next = &next
			}
		}
	}
	return resp, nil
}

// Finalize closes a stepwise attempt: the score is the count of correct
// attempt answers, the total the snapshot size from attempt start.
func (s *AttemptService) Finalize(ctx context.Context, userID uint, attemptID string) (*model.QuizResult, error) {
	attempt, err := s.ownedActiveAttempt(userID, attemptID)
	if err != nil {
		return nil, err
	}

	correct, err := s.AttemptRepo.CountCorrect(attempt.ID)
	if err != nil {
		return nil, err
	}

	result := &model.QuizResult{
		UserID:    userID,
		QuizSetID: attempt.QuizSetID,
		AttemptID: attempt.ID,
		Score:     int(correct),
		Total:     attempt.QuestionCount,
	}
	if err := s.AttemptRepo.Complete(attempt, result); err != nil {
		return nil, err
	}

	if err := s.Snapshots.Delete(ctx, attempt.ID); err != nil {
		logger.Log.Warn("failed to drop attempt snapshot",
			zap.String("attempt", attempt.ID), zap.Error(err))
	}

	monitoring.GradedAttempts.WithLabelValues("stepwise").Inc()
	return result, nil
}
