// models/question.go
package models

import (
	"errors"
	"time"
)

// QuestionOptionCount is the number of answer options every question carries.
const QuestionOptionCount = 4

type Question struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Text         string     `gorm:"not null;type:text" json:"text"`
	Explanation  string     `gorm:"type:text" json:"explanation"`
	Image        string     `gorm:"size:255" json:"image"`
	Options      StringList `gorm:"not null;type:text" json:"options"`
	CorrectIndex int        `gorm:"not null;default:0" json:"correct_index"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}

// Validate enforces the option invariants before any create/update.
func (q *Question) Validate() error {
	if len(q.Options) != QuestionOptionCount {
		return errors.New("Each question must have exactly 4 options.")
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return errors.New("Correct index must be between 0 and 3.")
	}
	return nil
}

// CorrectOption returns the answer text. The "none" fallback should be
// unreachable for validated rows.
func (q *Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return "none"
	}
	return q.Options[q.CorrectIndex]
}
