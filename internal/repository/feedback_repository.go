package repository

import (
	"quiz_portal_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(f *model.Feedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) ListAll() ([]model.Feedback, error) {
	var fs []model.Feedback
	err := r.DB.Preload("User").Preload("Question").
		Order("created_at desc").
		Find(&fs).Error
	return fs, err
}

func (r *FeedbackRepository) ListByUser(userID uint) ([]model.Feedback, error) {
	var fs []model.Feedback
	err := r.DB.Preload("Question").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&fs).Error
	return fs, err
}
