// services/users.go - User Directory operations
package services

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"algoquiz/models"

	"gorm.io/gorm"
)

// Username length bounds, counted in characters after trimming.
const (
	UsernameMinLen = 6
	UsernameMaxLen = 20
)

// NormalizeUsername produces the canonical lowercase form used for
// case-insensitive comparisons.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername normalizes a candidate username and checks every
// registration rule except uniqueness. Returns the trimmed name.
func ValidateUsername(username string) (string, error) {
	name := strings.TrimSpace(username)

	if name == "" {
		return "", NewValidationError("username", "Username cannot be empty.")
	}

	if n := utf8.RuneCountInString(name); n < UsernameMinLen || n > UsernameMaxLen {
		return "", NewValidationError("username", "Username must be between 6 and 20 characters.")
	}

	hasDigit := false
	for _, r := range name {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return "", NewValidationError("username", "Username must contain at least one digit.")
	}

	return name, nil
}

// RegisterUser creates a user with the submitted (post-trim) casing and
// zero points. The pre-check on the normalized name is an optimization;
// the LOWER(username) unique index is what actually guarantees
// uniqueness, so a duplicate-key error at insert time is reported as the
// same validation error.
func RegisterUser(db *gorm.DB, username string) (*models.User, error) {
	name, err := ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("LOWER(username) = ?", NormalizeUsername(name)).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewValidationError("username", "This username is already taken.")
	}

	user := models.User{
		Username:         name,
		Points:           0,
		Rank:             models.CalculateRank(0),
		ProfilePhoto:     models.DefaultProfilePhoto,
		CompletedQuizzes: models.UintList{},
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewValidationError("username", "This username is already taken.")
		}
		return nil, err
	}

	return &user, nil
}

// FindUserByUsername looks a user up case-insensitively by the trimmed,
// lowercased name.
func FindUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	name := NormalizeUsername(username)

	var user models.User
	err := db.Where("LOWER(username) = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("username %q", name)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser loads a user by id.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("user %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveUser persists a user, recomputing the derived rank from the
// current point total first. All user writes go through here.
func SaveUser(db *gorm.DB, user *models.User) error {
	user.Rank = models.CalculateRank(user.Points)
	if user.CompletedQuizzes == nil {
		user.CompletedQuizzes = models.UintList{}
	}
	return db.Save(user).Error
}

// CompleteQuiz records a finished quiz for the user and awards points.
// Recording the same quiz twice keeps set semantics; points are only
// awarded on the first completion.
func CompleteQuiz(db *gorm.DB, userID, quizID uint, points int) (*models.User, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	if !user.CompletedQuizzes.Contains(quizID) {
		user.CompletedQuizzes = append(user.CompletedQuizzes, quizID)
		user.Points += points
	}

	if err := SaveUser(db, user); err != nil {
		return nil, err
	}
	return user, nil
}
