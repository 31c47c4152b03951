package model

const (
	AttemptActive    = "active"
	AttemptCompleted = "completed"
)

// QuizAttempt is one pass through a quiz set by one user. QuestionCount
// is the size of the question snapshot frozen when the attempt started;
// display and grading both work against that snapshot, so an admin adding
// questions mid-attempt cannot skew the score.
// swagger:model QuizAttempt
type QuizAttempt struct {
	UUIDBase
	UserID        uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	QuizSetID     uint   `gorm:"index;type:bigint unsigned;not null" json:"quizSetId"`
	Status        string `gorm:"size:20;default:'active'" json:"status"`
	QuestionCount int    `gorm:"not null" json:"questionCount"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// AttemptAnswer is the stepwise progress cursor, one row per
// (attempt, question). It deliberately lives off the Question row so one
// student's progress can never overwrite another's.
type AttemptAnswer struct {
	BaseModel
	AttemptID  string `gorm:"index:idx_attempt_question,unique;type:varchar(36);not null" json:"attemptId"`
	QuestionID uint   `gorm:"index:idx_attempt_question,unique;type:bigint unsigned;not null" json:"questionId"`
	Selected   string `gorm:"size:255" json:"selected"`
	Correct    bool   `gorm:"default:false" json:"correct"`
}

func (AttemptAnswer) TableName() string {
	return "attempt_answers"
}
