// handlers/users.go
package handlers

import (
	"algoquiz/database"
	"algoquiz/middleware"
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser returns the authenticated user's public profile.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	user, err := services.GetUser(database.GetDB(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(userProfile(user))
}

type CompleteQuizRequest struct {
	QuizID uint `json:"quiz_id"`
	Points int  `json:"points"`
}

// CompleteQuiz records a finished quiz for the authenticated user and
// awards the earned points. Completing the same quiz again is a no-op.
func CompleteQuiz(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CompleteQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"quiz_id": []string{"Invalid request body."},
		})
	}

	if req.QuizID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"quiz_id": []string{"Quiz id is required."},
		})
	}
	if req.Points < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"points": []string{"Points cannot be negative."},
		})
	}

	user, err := services.CompleteQuiz(database.GetDB(), userID, req.QuizID, req.Points)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(userProfile(user))
}
