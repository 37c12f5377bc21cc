// handlers/admin/upload.go
package admin

import (
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
)

// UploadImage stores a multipart image for the given kind (question,
// quiz, profile) and returns both the stored path and its public URL.
// Handlers persist the returned path on the owning entity.
func UploadImage(c *fiber.Ctx) error {
	kind := c.Params("kind")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Image file is required"})
	}

	stored, dst, err := services.NewImagePath(kind, fileHeader.Filename)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := c.SaveFile(fileHeader, dst); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store image"})
	}

	return c.Status(201).JSON(fiber.Map{
		"path": stored,
		"url":  services.AbsoluteMediaURL(stored),
	})
}
