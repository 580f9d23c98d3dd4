package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// Permit enforces a permission-engine predicate on the actor's role before
// the handler runs. Requires LoadActor to have run first; without an actor
// the request is rejected (fail-closed).
func Permit(allowed func(domain.Role) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, _ := c.Get("actor").(*domain.User)
			if actor == nil || !allowed(actor.Role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
