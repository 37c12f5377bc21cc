// handlers/admin/quizzes.go
package admin

import (
	"errors"

	"algoquiz/database"
	"algoquiz/models"
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
)

type QuizRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Image       string `json:"image"`
	QuestionIDs []uint `json:"question_ids"`
}

// CreateQuiz writes a quiz shell together with its ten question links as
// one atomic unit.
func CreateQuiz(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	quiz := models.Quiz{
		Title:      req.Title,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Image:      req.Image,
	}

	if err := services.CreateQuiz(database.GetDB(), &quiz, req.QuestionIDs); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(201).JSON(quiz)
}

// UpdateQuiz edits quiz fields and optionally replaces the question set.
// Omitting question_ids keeps the current links; either way the
// exactly-ten invariant is recounted before commit.
func UpdateQuiz(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Quiz not found"})
	}

	db := database.GetDB()

	quiz, err := services.GetQuiz(db, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title != "" {
		quiz.Title = req.Title
	}
	if req.Category != "" {
		quiz.Category = req.Category
	}
	if req.Difficulty != "" {
		quiz.Difficulty = req.Difficulty
	}
	if req.Image != "" {
		quiz.Image = req.Image
	}

	if err := services.UpdateQuiz(db, quiz, req.QuestionIDs); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(quiz)
}

// DeleteQuiz removes a quiz and its question links.
func DeleteQuiz(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Quiz not found"})
	}

	if err := services.DeleteQuiz(database.GetDB(), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": id})
}

// respondServiceError maps service errors onto the admin surface, which
// uses the flat {"error": ...} shape throughout.
func respondServiceError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return c.Status(400).JSON(fiber.Map{"error": ve.Message})
	}
	if services.IsNotFound(err) {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
}
