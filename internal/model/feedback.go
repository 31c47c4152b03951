package model

// Feedback is an admin's free-text comment on a question for a specific
// student.
// swagger:model Feedback
type Feedback struct {
	BaseModel
	UserID     uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	QuestionID uint   `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	Comment    string `gorm:"size:512;not null" json:"comment"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Question *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
