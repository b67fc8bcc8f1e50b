package serverutils

import (
	"errors"

	"cinemotion-be/pkg/mood"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// the standard response envelope. Mood pipeline errors map to:
// validation 400, missing tags 422, no match 404, provider trouble 502.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		var validationErr *mood.ValidationError
		var malformedErr *mood.MalformedResponseError
		var providerErr *mood.ProviderError

		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.As(err, &validationErr):
			code = fiber.StatusBadRequest
			message = validationErr.Error()
		case errors.Is(err, mood.ErrNoTags):
			code = fiber.StatusUnprocessableEntity
			message = "Could not extract mood tags from the analysis"
		case errors.Is(err, mood.ErrNoMatchFound):
			code = fiber.StatusNotFound
			message = "No match found"
		case errors.Is(err, mood.ErrEmptyResponse):
			code = fiber.StatusBadGateway
			message = "The analysis service returned an empty response"
		case errors.As(err, &malformedErr):
			code = fiber.StatusBadGateway
			message = "The analysis service returned an unusable response"
		case errors.As(err, &providerErr):
			code = fiber.StatusBadGateway
			message = "The analysis service is unavailable"
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
