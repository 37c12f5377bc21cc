// cmd/seed-importer - loads a quiz seed file into the database
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"algoquiz/database"
	"algoquiz/models"
	"algoquiz/services"

	"github.com/joho/godotenv"
)

type SeedQuestion struct {
	Text         string   `json:"text"`
	Explanation  string   `json:"explanation"`
	Image        string   `json:"image"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type SeedQuiz struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Image      string `json:"image"`
	// Questions holds 1-based positions into the seed's question list.
	Questions []int `json:"questions"`
}

type SeedFile struct {
	Questions []SeedQuestion `json:"questions"`
	Quizzes   []SeedQuiz     `json:"quizzes"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	seedPath := "./seed/quizzes.json"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	data, err := os.ReadFile(seedPath)
	if err != nil {
		log.Fatal("Failed to read seed file:", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		log.Fatal("Failed to parse seed file:", err)
	}

	database.InitDB()
	defer database.CloseDB()
	db := database.GetDB()

	fmt.Printf("Found %d questions and %d quizzes\n\n", len(seed.Questions), len(seed.Quizzes))

	questionIDs := make([]uint, len(seed.Questions))
	for i, sq := range seed.Questions {
		question := models.Question{
			Text:         sq.Text,
			Explanation:  sq.Explanation,
			Image:        sq.Image,
			Options:      models.StringList(sq.Options),
			CorrectIndex: sq.CorrectIndex,
		}
		if err := services.SaveQuestion(db, &question); err != nil {
			log.Fatalf("question %d: %v", i+1, err)
		}
		questionIDs[i] = question.ID
	}
	fmt.Printf("Imported %d questions\n", len(questionIDs))

	for i, sq := range seed.Quizzes {
		ids := make([]uint, 0, len(sq.Questions))
		for _, pos := range sq.Questions {
			if pos < 1 || pos > len(questionIDs) {
				log.Fatalf("quiz %q: question position %d out of range", sq.Title, pos)
			}
			ids = append(ids, questionIDs[pos-1])
		}

		quiz := models.Quiz{
			Title:      sq.Title,
			Category:   sq.Category,
			Difficulty: sq.Difficulty,
			Image:      sq.Image,
		}
		if err := services.CreateQuiz(db, &quiz, ids); err != nil {
			log.Fatalf("quiz %d (%q): %v", i+1, sq.Title, err)
		}
		fmt.Printf("Imported quiz: %s (%s)\n", quiz.Title, quiz.Category)
	}

	fmt.Println("\nDone.")
}
