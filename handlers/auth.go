// handlers/auth.go
package handlers

import (
	"time"

	"algoquiz/database"
	"algoquiz/middleware"
	"algoquiz/models"
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type RegisterRequest struct {
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
}

// Register creates a new user account from a username alone.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"username": []string{"Invalid request body."},
		})
	}

	user, err := services.RegisterUser(database.GetDB(), req.Username)
	if err != nil {
		return respondError(c, err)
	}

	access, refresh, err := generateTokenPair(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse("User registered successfully.", access, refresh, user))
}

// Login authenticates by username only; there is no password in this
// system. The lookup is case-insensitive.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"username": []string{"Invalid request body."},
		})
	}

	db := database.GetDB()

	user, err := services.FindUserByUsername(db, req.Username)
	if err != nil {
		if services.IsNotFound(err) {
			name := services.NormalizeUsername(req.Username)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"username": []string{"Username '" + name + "' not found! Please register first."},
			})
		}
		return respondError(c, err)
	}

	// Rank is derived; recompute from current points on every save.
	if err := services.SaveUser(db, user); err != nil {
		return respondError(c, err)
	}

	access, refresh, err := generateTokenPair(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(authResponse("Login successful.", access, refresh, user))
}

func authResponse(message, access, refresh string, user *models.User) fiber.Map {
	resp := userProfile(user)
	resp["message"] = message
	resp["access"] = access
	resp["refresh"] = refresh
	return resp
}

// Token lifetimes for the issued pair.
const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

func generateTokenPair(user *models.User) (string, string, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(accessTokenTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString(middleware.JWTSecret())
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"type":     "refresh",
		"exp":      now.Add(refreshTokenTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString(middleware.JWTSecret())
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}
