// cmd/seed-lint - validates a quiz seed file without touching the database
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"algoquiz/models"
)

type seedQuestion struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type seedQuiz struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Image      string `json:"image"`
	Questions  []int  `json:"questions"`
}

type seedFile struct {
	Questions []seedQuestion `json:"questions"`
	Quizzes   []seedQuiz     `json:"quizzes"`
}

func main() {
	path := "./seed/quizzes.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s: read error: %v\n", path, err)
		os.Exit(1)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		fmt.Printf("%s: parse error: %v\n", path, err)
		os.Exit(1)
	}

	bad := 0
	for i, sq := range seed.Questions {
		q := models.Question{
			Text:         sq.Text,
			Options:      models.StringList(sq.Options),
			CorrectIndex: sq.CorrectIndex,
		}
		if sq.Text == "" {
			fmt.Printf("question %d: empty text\n", i+1)
			bad++
		}
		if err := q.Validate(); err != nil {
			fmt.Printf("question %d: %v\n", i+1, err)
			bad++
		}
	}

	for i, sq := range seed.Quizzes {
		if sq.Title == "" {
			fmt.Printf("quiz %d: empty title\n", i+1)
			bad++
		}
		if !models.ValidDifficulty(sq.Difficulty) {
			fmt.Printf("quiz %d (%q): invalid difficulty %q\n", i+1, sq.Title, sq.Difficulty)
			bad++
		}
		if sq.Image == "" {
			fmt.Printf("quiz %d (%q): missing image\n", i+1, sq.Title)
			bad++
		}
		if len(sq.Questions) != models.QuestionsPerQuiz {
			fmt.Printf("quiz %d (%q): has %d questions, want %d\n", i+1, sq.Title, len(sq.Questions), models.QuestionsPerQuiz)
			bad++
		}
		seen := make(map[int]bool)
		for _, pos := range sq.Questions {
			if pos < 1 || pos > len(seed.Questions) {
				fmt.Printf("quiz %d (%q): question position %d out of range\n", i+1, sq.Title, pos)
				bad++
				continue
			}
			if seen[pos] {
				fmt.Printf("quiz %d (%q): duplicate question position %d\n", i+1, sq.Title, pos)
				bad++
			}
			seen[pos] = true
		}
	}

	if bad > 0 {
		fmt.Printf("\n%d problem(s) found\n", bad)
		os.Exit(1)
	}
	fmt.Printf("%s: %d questions, %d quizzes, all valid\n", path, len(seed.Questions), len(seed.Quizzes))
}
