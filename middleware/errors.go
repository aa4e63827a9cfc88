package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
)

// ErrorHandler shapes every failure into a {"error": message} body. Client
// errors keep their message; internal failures are logged and surfaced with
// a fixed message so storage error text never reaches callers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.Internal {
			log.Printf("%s %s -> 500: %v", c.Method(), c.Path(), appErr.Err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": appErr.Message})
		}
		log.Printf("%s %s -> %d: %s", c.Method(), c.Path(), appErr.Status(), appErr.Message)
		return c.Status(appErr.Status()).JSON(fiber.Map{"error": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	log.Printf("%s %s -> 500 (unhandled): %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}

// NotFoundHandler terminates unmatched routes with a 404 instead of letting
// them fall through as an opaque server error.
func NotFoundHandler(c *fiber.Ctx) error {
	return apperrors.NewNotFound("Route not found")
}
