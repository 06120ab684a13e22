package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the {message} body every error reply uses.
type ErrorResponse struct {
	Message string `json:"message" example:"User not found"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
