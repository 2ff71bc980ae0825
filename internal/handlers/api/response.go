package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"rebrain/internal/models"
	"rebrain/internal/validation"
)

// jsonMessage returns a 200 response with a {message} body.
func jsonMessage(c fiber.Ctx, message string) error {
	return c.JSON(models.MessageResponse{Message: message})
}

// jsonError returns a {message} body with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.MessageResponse{Message: message})
}

// decodeAndValidate unmarshals the request body into dst and runs struct
// validation. On failure it writes the 400 response itself and returns
// ok=false; the returned error is what the handler should return.
func decodeAndValidate(c fiber.Ctx, v *validation.Validator, dst any, message string) (bool, error) {
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
			Message: message,
			Errors:  map[string]string{"body": "must be valid JSON"},
		})
	}

	if err := v.Validate(dst); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return false, c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
				Message: message,
				Errors:  verr.Fields,
			})
		}
		return false, err
	}

	return true, nil
}
