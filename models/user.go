// models/user.go
package models

import (
	"time"
)

// Rank tiers derived from a user's point total.
const (
	RankBronze = "Bronze"
	RankSilver = "Silver"
	RankGold   = "Gold"
)

// DefaultProfilePhoto is served for users who never uploaded one.
const DefaultProfilePhoto = "profile_photos/defaultProfileImage.jpg"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null;size:150;index" json:"username"`
	Points   int    `gorm:"default:0" json:"points"`

	// Rank is derived from Points on every save. Never trust a
	// client-supplied value; the write path recomputes it.
	Rank string `gorm:"size:10;default:'Bronze'" json:"rank"`

	ProfilePhoto     string   `gorm:"size:255" json:"profile_photo"`
	CompletedQuizzes UintList `gorm:"type:text" json:"completed_quizzes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// CalculateRank maps a point total to its tier. Total over all ints;
// negative points land on Bronze.
func CalculateRank(points int) string {
	if points >= 3000 {
		return RankGold
	}
	if points >= 1000 {
		return RankSilver
	}
	return RankBronze
}
