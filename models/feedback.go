// models/feedback.go
package models

import (
	"time"
)

// FeedbackSingletonID keys the one shared like/dislike tally row.
const FeedbackSingletonID = 1

type ContactFeedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	Dislikes  int       `gorm:"not null;default:0" json:"dislikes"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactFeedback) TableName() string {
	return "contact_feedback"
}
