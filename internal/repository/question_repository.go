package repository

import (
	"quiz_portal_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) ListByQuizSet(quizSetID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("quiz_set_id = ?", quizSetID).Order("created_at asc, id asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var qs []model.Question
	if len(ids) == 0 {
		return qs, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&qs).Error
	return qs, err
}
