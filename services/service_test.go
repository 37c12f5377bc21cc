package services

import (
	"fmt"
	"strings"
	"testing"

	"algoquiz/database"
	"algoquiz/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database migrated to the full
// schema. The shared-cache DSN keeps all pooled connections on the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// createQuestions inserts n valid questions and returns their ids.
func createQuestions(t *testing.T, db *gorm.DB, n int) []uint {
	t.Helper()

	ids := make([]uint, n)
	for i := 0; i < n; i++ {
		q := models.Question{
			Text:         fmt.Sprintf("Question %d", i+1),
			Options:      models.StringList{"a", "b", "c", "d"},
			CorrectIndex: i % models.QuestionOptionCount,
		}
		if err := SaveQuestion(db, &q); err != nil {
			t.Fatalf("failed to create question %d: %v", i+1, err)
		}
		ids[i] = q.ID
	}
	return ids
}

func newTestQuiz() *models.Quiz {
	return &models.Quiz{
		Title:      "Graph Algorithms Basics",
		Category:   "Graph Algorithms",
		Difficulty: models.DifficultyMedium,
		Image:      "quiz_images/graphs.png",
	}
}
