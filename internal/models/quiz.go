package models

import (
	"time"
)

type Quiz struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Name           string       `gorm:"not null;size:50" json:"name"`
	Author         string       `gorm:"not null;size:100;index" json:"author"` // username copy, no FK
	Thumbnail      string       `gorm:"not null;size:800" json:"thumbnail"`
	TotalQuestions int          `gorm:"not null;default:0" json:"total_questions"`
	Questions      QuestionList `gorm:"type:text;not null" json:"questions"`
	CreatedAt      time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
