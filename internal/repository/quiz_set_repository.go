package repository

import (
	"quiz_portal_backend/internal/model"

	"gorm.io/gorm"
)

type QuizSetRepository struct {
	DB *gorm.DB
}

func NewQuizSetRepository(db *gorm.DB) *QuizSetRepository {
	return &QuizSetRepository{DB: db}
}

func (r *QuizSetRepository) Create(qs *model.QuizSet) error {
	return r.DB.Create(qs).Error
}

func (r *QuizSetRepository) FindByID(id uint) (*model.QuizSet, error) {
	var qs model.QuizSet
	err := r.DB.First(&qs, id).Error
	return &qs, err
}

// QuizSetSummary is the listing row: a set plus its live question count.
type QuizSetSummary struct {
	model.QuizSet
	QuestionCount int64 `json:"questionCount"`
}

func (r *QuizSetRepository) ListWithCounts() ([]QuizSetSummary, error) {
	var sets []model.QuizSet
	if err := r.DB.Order("created_at asc").Find(&sets).Error; err != nil {
		return nil, err
	}

	summaries := make([]QuizSetSummary, len(sets))
	for i, qs := range sets {
		var count int64
		if err := r.DB.Model(&model.Question{}).Where("quiz_set_id = ?", qs.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		summaries[i] = QuizSetSummary{QuizSet: qs, QuestionCount: count}
	}
	return summaries, nil
}

func (r *QuizSetRepository) CountQuestions(quizSetID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("quiz_set_id = ?", quizSetID).Count(&count).Error
	return count, err
}
