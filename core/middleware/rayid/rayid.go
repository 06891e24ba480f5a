package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the request ID in both directions.
const Header = "X-Ray-ID"

// LocalsKey is where the request ID is stored on the fiber context.
const LocalsKey = "ray_id"

// New returns a middleware that assigns every request a RayID.
// An incoming X-Ray-ID header is reused.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
