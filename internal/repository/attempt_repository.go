package repository

import (
	"quiz_portal_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(a *model.QuizAttempt) error {
	return r.DB.Create(a).Error
}

func (r *AttemptRepository) FindByID(id string) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.Where("id = ?", id).First(&a).Error
	return &a, err
}

func (r *AttemptRepository) CreateAnswer(ans *model.AttemptAnswer) error {
	return r.DB.Create(ans).Error
}

func (r *AttemptRepository) FindAnswer(attemptID string, questionID uint) (*model.AttemptAnswer, error) {
	var ans model.AttemptAnswer
	err := r.DB.Where("attempt_id = ? AND question_id = ?", attemptID, questionID).First(&ans).Error
	return &ans, err
}

func (r *AttemptRepository) ListAnswers(attemptID string) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).Order("created_at asc").Find(&answers).Error
	return answers, err
}

func (r *AttemptRepository) CountCorrect(attemptID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AttemptAnswer{}).
		Where("attempt_id = ? AND correct = ?", attemptID, true).
		Count(&count).Error
	return count, err
}

// Complete flips the attempt to completed and writes its result row in
// one transaction, so a failed write never leaves a half-recorded grade.
func (r *AttemptRepository) Complete(attempt *model.QuizAttempt, result *model.QuizResult) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.QuizAttempt{}).
			Where("id = ? AND status = ?", attempt.ID, model.AttemptActive).
			Update("status", model.AttemptCompleted).Error; err != nil {
			return err
		}
		return tx.Create(result).Error
	})
}
