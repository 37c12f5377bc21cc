// handlers/quizzes.go
package handlers

import (
	"strconv"

	"algoquiz/database"
	"algoquiz/models"
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
)

// ListQuizzes returns summary fields for every quiz; questions are not
// embedded here.
func ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := services.ListQuizzes(database.GetDB())
	if err != nil {
		return respondError(c, err)
	}

	data := make([]fiber.Map, len(quizzes))
	for i, quiz := range quizzes {
		data[i] = fiber.Map{
			"id":                 quiz.ID,
			"title":              quiz.Title,
			"category":           quiz.Category,
			"difficulty":         quiz.Difficulty,
			"image":              services.AbsoluteMediaURL(quiz.Image),
			"question_count":     models.QuestionsPerQuiz,
			"time_limit_minutes": models.TimeLimitMinutes,
			"created_at":         quiz.CreatedAt,
		}
	}

	return c.JSON(data)
}

// GetQuiz returns one quiz with its questions in presentation order.
func GetQuiz(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Quiz not found",
		})
	}

	db := database.GetDB()

	quiz, err := services.GetQuiz(db, uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"detail": "Quiz not found",
			})
		}
		return respondError(c, err)
	}

	links, err := services.GetQuizQuestions(db, quiz.ID)
	if err != nil {
		return respondError(c, err)
	}

	questions := make([]fiber.Map, 0, len(links))
	for _, link := range links {
		if link.Question == nil {
			continue
		}
		q := link.Question

		var image interface{}
		if q.Image != "" {
			image = services.AbsoluteMediaURL(q.Image)
		}

		questions = append(questions, fiber.Map{
			"id":            q.ID,
			"question":      q.Text,
			"image":         image,
			"options":       q.Options,
			"correct_index": q.CorrectIndex,
			"explanation":   q.Explanation,
		})
	}

	return c.JSON(fiber.Map{
		"id":         quiz.ID,
		"title":      quiz.Title,
		"category":   quiz.Category,
		"difficulty": quiz.Difficulty,
		"questions":  questions,
	})
}
