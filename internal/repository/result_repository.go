package repository

import (
	"quiz_portal_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) FindByID(id uint) (*model.QuizResult, error) {
	var res model.QuizResult
	err := r.DB.Preload("QuizSet").First(&res, id).Error
	return &res, err
}

func (r *ResultRepository) ListByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Preload("QuizSet").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizResult{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// UserTotals sums the stored score and snapshot total over a user's
// results. Totals are read from the result rows, never from the live
// question count, so later quiz-set edits cannot move them.
type UserTotals struct {
	TotalScore     int `gorm:"column:total_score"`
	TotalQuestions int `gorm:"column:total_questions"`
}

func (r *ResultRepository) SumByUser(userID uint) (*UserTotals, error) {
	var totals UserTotals
	err := r.DB.Model(&model.QuizResult{}).
		Select("COALESCE(SUM(score), 0) as total_score, COALESCE(SUM(total), 0) as total_questions").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	return &totals, err
}

func (r *ResultRepository) ListCommented() ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Preload("User").Preload("QuizSet").
		Where("admin_comment <> ''").
		Order("updated_at desc").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) UpdateComment(id uint, comment string) error {
	return r.DB.Model(&model.QuizResult{}).
		Where("id = ?", id).
		Update("admin_comment", comment).Error
}
