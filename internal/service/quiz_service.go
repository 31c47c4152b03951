package service

import (
	"errors"

	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/repository"
	"quiz_portal_backend/internal/util"

	"gorm.io/gorm"
)

// QuizService covers authoring and listing of quiz sets and questions.
// Sets and questions are write-once: there is deliberately no update or
// delete path here.
type QuizService struct {
	QuizSetRepo  *repository.QuizSetRepository
	QuestionRepo *repository.QuestionRepository
}

func NewQuizService(quizSetRepo *repository.QuizSetRepository, questionRepo *repository.QuestionRepository) *QuizService {
	return &QuizService{
		QuizSetRepo:  quizSetRepo,
		QuestionRepo: questionRepo,
	}
}

type QuizSetRequest struct {
	Title string `json:"title" binding:"required"`
}

func (s *QuizService) CreateQuizSet(req QuizSetRequest, creatorID uint) (*model.QuizSet, error) {
	qs := &model.QuizSet{
		Title:     req.Title,
		CreatedBy: creatorID,
	}
	if err := s.QuizSetRepo.Create(qs); err != nil {
		return nil, err
	}
	return qs, nil
}

type QuestionRequest struct {
	QuizSetID     uint     `json:"quizSetId" binding:"required"`
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectOption string   `json:"correctOption" binding:"required"`
}

func (s *QuizService) CreateQuestion(req QuestionRequest, creatorID uint) (*model.Question, error) {
	if _, err := s.QuizSetRepo.FindByID(req.QuizSetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizSetNotFound
		}
		return nil, err
	}

	q := &model.Question{
		QuizSetID:     req.QuizSetID,
		Text:          req.Text,
		Options:       model.StringList(req.Options),
		CorrectOption: req.CorrectOption,
		CreatedBy:     creatorID,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuizService) ListQuizSets() ([]repository.QuizSetSummary, error) {
	return s.QuizSetRepo.ListWithCounts()
}

// ListQuestions is the admin view: correct options included.
func (s *QuizService) ListQuestions(quizSetID uint) ([]model.Question, error) {
	if _, err := s.QuizSetRepo.FindByID(quizSetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizSetNotFound
		}
		return nil, err
	}
	return s.QuestionRepo.ListByQuizSet(quizSetID)
}
