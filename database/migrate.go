// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"algoquiz/models"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	log.Println("Running database migrations...")

	if err := Migrate(GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("All migrations completed successfully")
}

// Migrate creates the schema and indexes on the given connection.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.ContactFeedback{},
	); err != nil {
		return err
	}

	// Case-insensitive uniqueness on usernames is the source of truth for
	// registration; the handler pre-check is only an optimization.
	statements := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users (LOWER(username))",
		"CREATE INDEX IF NOT EXISTS idx_quizzes_category ON quizzes(category)",
		"CREATE INDEX IF NOT EXISTS idx_quizzes_difficulty ON quizzes(difficulty)",
		"CREATE INDEX IF NOT EXISTS idx_quiz_questions_quiz ON quiz_questions(quiz_id)",
		"CREATE INDEX IF NOT EXISTS idx_quiz_questions_question ON quiz_questions(question_id)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
