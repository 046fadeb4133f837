package middleware

import "github.com/gofiber/fiber/v2"

// Noop simply calls the next handler. It exists as a placeholder slot in
// the middleware chain.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
