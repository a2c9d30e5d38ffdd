package serverutils

import (
	"log"

	"linkmark-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors onto HTTP statuses:
// validation -> 400, not-found -> 404, everything else -> 500 with the
// cause kept out of the response body.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.As(err); ok {
			switch appErr.Kind {
			case apperror.KindValidation:
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": appErr.Message})
			case apperror.KindNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": appErr.Message})
			default:
				log.Printf("[ERROR] %v", appErr.Unwrap())
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": appErr.Message})
			}
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Printf("[ERROR] %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
