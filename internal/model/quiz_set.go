package model

// QuizSet is a named group of questions administered together as one quiz.
// swagger:model QuizSet
type QuizSet struct {
	BaseModel
	Title     string `gorm:"size:255;not null" json:"title"`
	CreatedBy uint   `gorm:"index;type:bigint unsigned" json:"createdBy"`

	Questions []Question `gorm:"foreignKey:QuizSetID" json:"questions,omitempty"`
}

func (QuizSet) TableName() string {
	return "quiz_sets"
}
