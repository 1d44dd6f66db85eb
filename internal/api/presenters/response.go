package presenters

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Error:   errorDetail(err),
	})
}

// ErrorDetailResponse reports structured detail (e.g. field violations) instead
// of a single error string.
func ErrorDetailResponse(c *fiber.Ctx, status int, message string, detail interface{}) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

func errorDetail(err error) interface{} {
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]fiber.Map, 0, len(verrs))
		for _, v := range verrs {
			fields = append(fields, fiber.Map{
				"field":  v.Field(),
				"reason": v.Tag(),
			})
		}
		return fields
	}

	return err.Error()
}
