package model

// QuizResult records one graded attempt. Total is the question count at
// grading time, stored on the row so dashboard aggregates stay stable
// even if the quiz set is edited later. Immutable after creation except
// for the one-shot admin review comment.
// swagger:model QuizResult
type QuizResult struct {
	BaseModel
	UserID       uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	QuizSetID    uint   `gorm:"index;type:bigint unsigned;not null" json:"quizSetId"`
	AttemptID    string `gorm:"index;type:varchar(36)" json:"attemptId"`
	Score        int    `gorm:"not null" json:"score"`
	Total        int    `gorm:"not null" json:"total"`
	AdminComment string `gorm:"size:512" json:"adminComment,omitempty"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	QuizSet *QuizSet `gorm:"foreignKey:QuizSetID" json:"quizSet,omitempty"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
