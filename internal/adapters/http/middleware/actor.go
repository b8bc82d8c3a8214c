package middleware

import (
	"intia-api/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Actor headers. Nothing authenticates them.
const (
	HeaderBranchID = "x-branch-id"
	HeaderRole     = "x-role"
)

const actorKey = "actor"

// Actor resolves the caller from the actor headers and stores it in Locals
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(actorKey, domain.ParseActor(c.Get(HeaderBranchID), c.Get(HeaderRole)))
		return c.Next()
	}
}

// ActorFrom returns the actor stored by Actor, or parses the headers when
// the middleware did not run
func ActorFrom(c *fiber.Ctx) domain.Actor {
	if actor, ok := c.Locals(actorKey).(domain.Actor); ok {
		return actor
	}
	return domain.ParseActor(c.Get(HeaderBranchID), c.Get(HeaderRole))
}
