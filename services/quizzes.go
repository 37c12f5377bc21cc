// services/quizzes.go - Quiz Catalog operations
package services

import (
	"errors"

	"algoquiz/models"

	"gorm.io/gorm"
)

// ListQuizzes returns all quiz summary rows.
func ListQuizzes(db *gorm.DB) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := db.Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// GetQuiz loads one quiz by id.
func GetQuiz(db *gorm.DB, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := db.First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("quiz %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetQuizQuestions returns the quiz's links with questions preloaded,
// ordered ascending by presentation order regardless of insertion order.
func GetQuizQuestions(db *gorm.DB, quizID uint) ([]models.QuizQuestion, error) {
	var links []models.QuizQuestion
	err := db.Preload("Question").
		Where("quiz_id = ?", quizID).
		Order("sort_order ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// SaveQuestion validates and persists a question.
func SaveQuestion(db *gorm.DB, q *models.Question) error {
	if q.Text == "" {
		return NewValidationError("text", "Question text cannot be empty.")
	}
	if err := q.Validate(); err != nil {
		return NewValidationError("options", err.Error())
	}
	return db.Save(q).Error
}

// DeleteQuestion removes a question and every quiz link that references
// it. Links are deleted explicitly inside the transaction in addition to
// the store-level cascade, so the behavior holds on every backend.
func DeleteQuestion(db *gorm.DB, id uint) error {
	var question models.Question
	if err := db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("question %d", id)
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.QuizQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, id).Error
	})
}

// ListQuestions returns all questions in the catalog.
func ListQuestions(db *gorm.DB) ([]models.Question, error) {
	var questions []models.Question
	if err := db.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestion loads one question by id.
func GetQuestion(db *gorm.DB, id uint) (*models.Question, error) {
	var question models.Question
	err := db.First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("question %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// CreateQuiz writes the quiz shell and its full link set in one
// transaction. Question order follows the slice order, starting at 1.
func CreateQuiz(db *gorm.DB, quiz *models.Quiz, questionIDs []uint) error {
	if err := validateQuizFields(quiz); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		if err := replaceQuizLinks(tx, quiz.ID, questionIDs); err != nil {
			return err
		}
		return validateComposition(tx, quiz.ID)
	})
}

// UpdateQuiz saves edited quiz fields and, when questionIDs is non-nil,
// replaces the link set. The composition invariant is recounted before
// the transaction commits, so a persisted quiz can never be left with a
// question count other than ten.
func UpdateQuiz(db *gorm.DB, quiz *models.Quiz, questionIDs []uint) error {
	if err := validateQuizFields(quiz); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(quiz).Error; err != nil {
			return err
		}
		if questionIDs != nil {
			if err := replaceQuizLinks(tx, quiz.ID, questionIDs); err != nil {
				return err
			}
		}
		return validateComposition(tx, quiz.ID)
	})
}

// DeleteQuiz removes a quiz and its links.
func DeleteQuiz(db *gorm.DB, id uint) error {
	if _, err := GetQuiz(db, id); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&models.QuizQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Quiz{}, id).Error
	})
}

func validateQuizFields(quiz *models.Quiz) error {
	if quiz.Title == "" {
		return NewValidationError("title", "Quiz title cannot be empty.")
	}
	if !models.ValidDifficulty(quiz.Difficulty) {
		return NewValidationError("difficulty", "Difficulty must be one of: easy, medium, hard.")
	}
	if quiz.Image == "" {
		return NewValidationError("image", "Quiz image is required.")
	}
	return nil
}

func replaceQuizLinks(tx *gorm.DB, quizID uint, questionIDs []uint) error {
	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.QuizQuestion{}).Error; err != nil {
		return err
	}

	seen := make(map[uint]bool, len(questionIDs))
	for i, qid := range questionIDs {
		if seen[qid] {
			return NewValidationError("questions", "A quiz cannot reference the same question twice.")
		}
		seen[qid] = true

		if _, err := GetQuestion(tx, qid); err != nil {
			if errors.Is(err, ErrNotFound) {
				return NewValidationError("questions", "Unknown question id in quiz.")
			}
			return err
		}

		link := models.QuizQuestion{
			QuizID:     quizID,
			QuestionID: qid,
			Order:      i + 1,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// validateComposition re-counts the quiz's links at validation time; it
// does not track a running count.
func validateComposition(tx *gorm.DB, quizID uint) error {
	var count int64
	if err := tx.Model(&models.QuizQuestion{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error; err != nil {
		return err
	}
	if count != models.QuestionsPerQuiz {
		return NewValidationError("questions", "A quiz must have exactly 10 questions.")
	}
	return nil
}
