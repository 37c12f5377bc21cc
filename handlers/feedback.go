// handlers/feedback.go
package handlers

import (
	"algoquiz/database"
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
)

type VoteRequest struct {
	Vote string `json:"vote"`
}

// Vote bumps the shared like/dislike tally. Malformed bodies and unknown
// vote kinds change nothing but still report success; the endpoint is
// unauthenticated and carries no per-user state.
func Vote(c *fiber.Ctx) error {
	var req VoteRequest
	_ = c.BodyParser(&req)

	if err := services.RecordVote(database.GetDB(), req.Vote); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"status": "vote recorded"})
}
