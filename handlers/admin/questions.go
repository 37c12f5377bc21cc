// handlers/admin/questions.go
package admin

import (
	"strconv"

	"algoquiz/database"
	"algoquiz/models"
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
)

type QuestionRequest struct {
	Text         string   `json:"text"`
	Explanation  string   `json:"explanation"`
	Image        string   `json:"image"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// GetQuestions lists the whole question catalog, answer previews included.
func GetQuestions(c *fiber.Ctx) error {
	questions, err := services.ListQuestions(database.GetDB())
	if err != nil {
		return respondServiceError(c, err)
	}

	data := make([]fiber.Map, len(questions))
	for i := range questions {
		q := &questions[i]
		data[i] = fiber.Map{
			"id":             q.ID,
			"text":           q.Text,
			"explanation":    q.Explanation,
			"image":          q.Image,
			"options":        q.Options,
			"correct_index":  q.CorrectIndex,
			"correct_option": q.CorrectOption(),
			"created_at":     q.CreatedAt,
		}
	}

	return c.JSON(fiber.Map{
		"questions": data,
		"total":     len(data),
	})
}

// CreateQuestion adds a question to the catalog.
func CreateQuestion(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	question := models.Question{
		Text:         req.Text,
		Explanation:  req.Explanation,
		Image:        req.Image,
		Options:      models.StringList(req.Options),
		CorrectIndex: req.CorrectIndex,
	}

	if err := services.SaveQuestion(database.GetDB(), &question); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(201).JSON(question)
}

// UpdateQuestion edits an existing question; the option invariants are
// re-checked on every update.
func UpdateQuestion(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Question not found"})
	}

	db := database.GetDB()

	question, err := services.GetQuestion(db, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	question.Text = req.Text
	question.Explanation = req.Explanation
	if req.Image != "" {
		question.Image = req.Image
	}
	question.Options = models.StringList(req.Options)
	question.CorrectIndex = req.CorrectIndex

	if err := services.SaveQuestion(db, question); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(question)
}

// DeleteQuestion removes a question; links referencing it are removed
// with it.
func DeleteQuestion(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Question not found"})
	}

	if err := services.DeleteQuestion(database.GetDB(), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": id})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
