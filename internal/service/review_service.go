package service

import (
	"errors"

	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/repository"
	"quiz_portal_backend/internal/util"

	"gorm.io/gorm"
)

// ReviewService is the admin review surface: one-shot comments on
// results and per-question feedback for a student.
type ReviewService struct {
	ResultRepo   *repository.ResultRepository
	QuestionRepo *repository.QuestionRepository
	UserRepo     *repository.UserRepository
	FeedbackRepo *repository.FeedbackRepository
}

func NewReviewService(
	resultRepo *repository.ResultRepository,
	questionRepo *repository.QuestionRepository,
	userRepo *repository.UserRepository,
	feedbackRepo *repository.FeedbackRepository,
) *ReviewService {
	return &ReviewService{
		ResultRepo:   resultRepo,
		QuestionRepo: questionRepo,
		UserRepo:     userRepo,
		FeedbackRepo: feedbackRepo,
	}
}

func (s *ReviewService) CommentResult(resultID uint, comment string) (*model.QuizResult, error) {
	result, err := s.ResultRepo.FindByID(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}

	if err := s.ResultRepo.UpdateComment(result.ID, comment); err != nil {
		return nil, err
	}
	result.AdminComment = comment
	return result, nil
}

type FeedbackRequest struct {
	UserID     uint   `json:"userId" binding:"required"`
	QuestionID uint   `json:"questionId" binding:"required"`
	Comment    string `json:"comment" binding:"required"`
}

func (s *ReviewService) CreateFeedback(req FeedbackRequest) (*model.Feedback, error) {
	if _, err := s.UserRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.QuestionRepo.FindByID(req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	f := &model.Feedback{
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		Comment:    req.Comment,
	}
	if err := s.FeedbackRepo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ReviewService) ListFeedback() ([]model.Feedback, error) {
	return s.FeedbackRepo.ListAll()
}

func (s *ReviewService) ListCommentedResults() ([]model.QuizResult, error) {
	return s.ResultRepo.ListCommented()
}
