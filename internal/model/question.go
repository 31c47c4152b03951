package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList stores an ordered list of option strings as a JSON column.
// Older schema variants kept a comma-delimited string here; the delimiter
// is a storage concern and never leaks past this type.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Contains reports whether s is one of the options (exact, case-sensitive).
func (l StringList) Contains(s string) bool {
	for _, o := range l {
		if o == s {
			return true
		}
	}
	return false
}

var ErrCorrectOptionNotListed = errors.New("correct option is not one of the question options")

// Question belongs to exactly one quiz set. Options and the correct
// option are immutable once quiz-taking has begun; there is no update path.
// swagger:model Question
type Question struct {
	BaseModel
	QuizSetID     uint       `gorm:"index;type:bigint unsigned;not null" json:"quizSetId"`
	Text          string     `gorm:"size:512;not null" json:"text"`
	Options       StringList `gorm:"type:json;not null" json:"options"`
	CorrectOption string     `gorm:"size:255;not null" json:"correctOption"`
	CreatedBy     uint       `gorm:"index;type:bigint unsigned" json:"createdBy"`
}

func (Question) TableName() string {
	return "questions"
}

// Validate enforces the membership invariant before a write is attempted.
func (q *Question) Validate() error {
	if len(q.Options) == 0 || !q.Options.Contains(q.CorrectOption) {
		return ErrCorrectOptionNotListed
	}
	return nil
}
