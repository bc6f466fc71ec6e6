package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CallerHeader carries the caller identity resolved by the hosting
// runtime. The service trusts this value; authentication itself is
// out of scope here.
const CallerHeader = "X-Caller-Id"

const callerLocal = "callerID"

// CallerIdentity stores the resolved caller identity in request locals.
func CallerIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(callerLocal, strings.TrimSpace(c.Get(CallerHeader)))
		return c.Next()
	}
}

// CallerFromCtx returns the caller identity for a request, empty when
// the header was absent.
func CallerFromCtx(c *fiber.Ctx) string {
	caller, _ := c.Locals(callerLocal).(string)
	return caller
}
