package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// ctxActor extracts the User injected by the LoadActor middleware. Its
// presence proves both Auth middlewares ran; without it the request never
// reaches a service call.
func ctxActor(c echo.Context) (*domain.User, error) {
	actor, _ := c.Get("actor").(*domain.User)
	if actor == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
