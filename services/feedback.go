// services/feedback.go - shared like/dislike tally
package services

import (
	"algoquiz/models"

	"gorm.io/gorm"
)

// Vote kinds accepted by RecordVote. Anything else is a no-op.
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// GetFeedback returns the singleton tally row, creating it with zeroed
// counters on first access.
func GetFeedback(db *gorm.DB) (*models.ContactFeedback, error) {
	feedback := models.ContactFeedback{ID: models.FeedbackSingletonID}
	err := db.Where("id = ?", models.FeedbackSingletonID).
		FirstOrCreate(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// RecordVote bumps the matching counter. The increment runs as a single
// UPDATE at the store so concurrent votes never lose updates. Unknown
// vote kinds change nothing and report success.
func RecordVote(db *gorm.DB, vote string) error {
	if vote != VoteLike && vote != VoteDislike {
		return nil
	}

	if _, err := GetFeedback(db); err != nil {
		return err
	}

	column := "likes"
	if vote == VoteDislike {
		column = "dislikes"
	}

	return db.Model(&models.ContactFeedback{}).
		Where("id = ?", models.FeedbackSingletonID).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}
