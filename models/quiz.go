// models/quiz.go
package models

import (
	"time"
)

// Fixed quiz metadata. Every quiz carries exactly QuestionsPerQuiz
// questions and the same time limit; neither is settable per row.
const (
	QuestionsPerQuiz = 10
	TimeLimitMinutes = 10
)

// Difficulty labels accepted on a quiz.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

type Quiz struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null;size:200" json:"title"`
	Category   string    `gorm:"size:100;index" json:"category"`
	Difficulty string    `gorm:"not null;size:10" json:"difficulty"`
	Image      string    `gorm:"not null;size:255" json:"image"`
	CreatedAt  time.Time `json:"created_at"`

	Links []QuizQuestion `gorm:"foreignKey:QuizID" json:"-"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion joins a quiz to one of its questions with a presentation
// order. Rows exist only as part of a quiz's question set; deleting either
// parent removes them.
type QuizQuestion struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	QuizID     uint `gorm:"not null;index;uniqueIndex:idx_quiz_sort_order,priority:1" json:"quiz_id"`
	QuestionID uint `gorm:"not null;index" json:"question_id"`
	Order      int  `gorm:"column:sort_order;not null;uniqueIndex:idx_quiz_sort_order,priority:2" json:"order"`

	Quiz     *Quiz     `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Question *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"question,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
