package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// Valid reports whether the role belongs to the closed set. Free-text
// roles coming off the wire are rejected before they reach the database.
func (r UserRole) Valid() bool {
	return r == Student || r == Admin
}

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"size:20;index;default:'student'" json:"role"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `json:"lastLogin"`

	Questions []Question   `gorm:"foreignKey:CreatedBy" json:"-"`
	Results   []QuizResult `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
