// handlers/responses.go - shared response shaping
package handlers

import (
	"errors"

	"algoquiz/models"
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto the wire: field-level validation
// failures become 400 {field: [message]} payloads, missing entities 404,
// anything else a 500 without leaking internals.
func respondError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			ve.Field: []string{ve.Message},
		})
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Not found.",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

// userProfile is the public field set returned by every auth flow.
func userProfile(user *models.User) fiber.Map {
	completed := user.CompletedQuizzes
	if completed == nil {
		completed = models.UintList{}
	}
	return fiber.Map{
		"username":          user.Username,
		"points":            user.Points,
		"profile_photo":     services.AbsoluteMediaURL(user.ProfilePhoto),
		"completed_quizzes": completed,
		"rank":              user.Rank,
	}
}
