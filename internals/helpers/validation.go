package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError memetakan validator.ValidationErrors ke envelope 422.
// Error lain dianggap body tidak valid (400).
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := strings.ToLower(fe.Field())
		fieldErrors[key] = append(fieldErrors[key], fe.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}
